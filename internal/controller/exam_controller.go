package controller

import (
	"net/http"

	"github.com/edustack/dashboard/internal/dto"
	"github.com/edustack/dashboard/internal/service"
	"github.com/edustack/dashboard/internal/session"
	"github.com/gin-gonic/gin"
)

// ExamController serves the three exam list screens. The category path
// segment is chapter, grand or university.
type ExamController struct {
	exams service.ExamService
	store session.Store
}

func NewExamController(exams service.ExamService, store session.Store) *ExamController {
	return &ExamController{exams: exams, store: store}
}

func (ctrl *ExamController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/exams", SessionContext(ctrl.store))
	g.GET("/:category", ctrl.List)
	g.POST("/:category/:id/select", ctrl.Select)
}

// List godoc
// @Summary List exams of one category
// @Description Exams for the parent selected in the session context (chapter, track or university), sorted by last-modified descending, then searched and paginated.
// @Tags exams
// @Produce json
// @Param category path string true "chapter | grand | university"
// @Param q query string false "Search query"
// @Param page query int false "Page number (clamped)"
// @Success 200 {object} listview.Page[dto.ExamSummaryResponse]
// @Failure 404 {object} dto.ErrorResponse "Parent selection missing from session context"
// @Failure 502 {object} dto.ErrorResponse
// @Router /exams/{category} [get]
func (ctrl *ExamController) List(c *gin.Context) {
	page, err := ctrl.exams.List(c.Request.Context(), sctx(c), c.Param("category"), c.Query("q"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Select godoc
// @Summary Select an exam
// @Description Records the exam id and its practice flag under the category's own context keys.
// @Tags exams
// @Accept json
// @Param category path string true "chapter | grand | university"
// @Param id path string true "Exam ID"
// @Param body body dto.SelectExamRequest true "Practice flag"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Router /exams/{category}/{id}/select [post]
func (ctrl *ExamController) Select(c *gin.Context) {
	var req dto.SelectExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := ctrl.exams.Select(sctx(c), c.Param("category"), c.Param("id"), req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
