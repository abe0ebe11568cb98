package controller

import (
	"net/http"
	"strconv"

	"github.com/edustack/dashboard/internal/builder"
	"github.com/edustack/dashboard/internal/dto"
	"github.com/edustack/dashboard/internal/service"
	"github.com/edustack/dashboard/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BuilderController exposes the staged exam authoring flow. Every
// mutation responds with the full post-action state; a commit that was
// silently rejected is visible as an unchanged committed count.
type BuilderController struct {
	builders service.BuilderService
	store    session.Store
}

func NewBuilderController(builders service.BuilderService, store session.Store) *BuilderController {
	return &BuilderController{builders: builders, store: store}
}

func (ctrl *BuilderController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/builder", SessionContext(ctrl.store))
	g.POST("/start", ctrl.Start)
	g.GET("", ctrl.State)
	g.PUT("/exam", ctrl.SetMeta)
	g.PUT("/question", ctrl.SetQuestionDraft)
	g.POST("/question/choices", ctrl.AddChoice)
	g.DELETE("/question/choices/:index", ctrl.RemoveChoice)
	g.POST("/questions", ctrl.CommitQuestion)
	g.DELETE("/questions/:index", ctrl.RemoveQuestion)
	g.PUT("/section", ctrl.SetSectionDraft)
	g.POST("/sections", ctrl.CommitSection)
	g.DELETE("/sections/:index", ctrl.RemoveSection)
	g.POST("/submit", ctrl.Submit)
}

// Start godoc
// @Summary Start a new exam draft
// @Description Opens a fresh builder for the tab, replacing any draft in progress.
// @Tags builder
// @Accept json
// @Produce json
// @Param body body dto.BuilderStartRequest true "Exam type and metadata"
// @Success 201 {object} builder.State
// @Failure 400 {object} dto.ErrorResponse
// @Router /builder/start [post]
func (ctrl *BuilderController) Start(c *gin.Context) {
	var req dto.BuilderStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Builder start: invalid request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	state, err := ctrl.builders.Start(sctx(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, state)
}

// State godoc
// @Summary Current builder state
// @Tags builder
// @Produce json
// @Success 200 {object} builder.State
// @Failure 404 {object} dto.ErrorResponse "No draft in progress"
// @Router /builder [get]
func (ctrl *BuilderController) State(c *gin.Context) {
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.State(s)
	})
}

// SetMeta godoc
// @Summary Update exam metadata
// @Tags builder
// @Accept json
// @Produce json
// @Param body body dto.ExamMetaRequest true "Exam metadata"
// @Success 200 {object} builder.State
// @Failure 404 {object} dto.ErrorResponse
// @Router /builder/exam [put]
func (ctrl *BuilderController) SetMeta(c *gin.Context) {
	var req dto.ExamMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.SetMeta(s, req)
	})
}

// SetQuestionDraft godoc
// @Summary Update the question draft
// @Description Replaces the uncommitted question's text, marks and graphic; already-added choices are kept.
// @Tags builder
// @Accept json
// @Produce json
// @Param body body dto.QuestionDraftRequest true "Question draft fields"
// @Success 200 {object} builder.State
// @Router /builder/question [put]
func (ctrl *BuilderController) SetQuestionDraft(c *gin.Context) {
	var req dto.QuestionDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.SetQuestionDraft(s, req)
	})
}

// AddChoice godoc
// @Summary Add a choice to the question draft
// @Description Empty choice text is rejected silently: the state comes back unchanged.
// @Tags builder
// @Accept json
// @Produce json
// @Param body body dto.ChoiceRequest true "Choice fields"
// @Success 200 {object} builder.State
// @Router /builder/question/choices [post]
func (ctrl *BuilderController) AddChoice(c *gin.Context) {
	var req dto.ChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.AddChoice(s, req)
	})
}

// RemoveChoice godoc
// @Summary Remove a draft choice by index
// @Tags builder
// @Produce json
// @Param index path int true "Choice index"
// @Success 200 {object} builder.State
// @Router /builder/question/choices/{index} [delete]
func (ctrl *BuilderController) RemoveChoice(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.RemoveChoice(s, idx)
	})
}

// CommitQuestion godoc
// @Summary Commit the question draft
// @Description Moves the draft into the committed list when it has text and at least one choice; otherwise a silent no-op.
// @Tags builder
// @Produce json
// @Success 200 {object} builder.State
// @Router /builder/questions [post]
func (ctrl *BuilderController) CommitQuestion(c *gin.Context) {
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.CommitQuestion(s)
	})
}

// RemoveQuestion godoc
// @Summary Remove a committed question by index
// @Tags builder
// @Produce json
// @Param index path int true "Question index"
// @Success 200 {object} builder.State
// @Router /builder/questions/{index} [delete]
func (ctrl *BuilderController) RemoveQuestion(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.RemoveQuestion(s, idx)
	})
}

// SetSectionDraft godoc
// @Summary Update the section draft (university exams)
// @Tags builder
// @Accept json
// @Produce json
// @Param body body dto.SectionDraftRequest true "Section draft fields"
// @Success 200 {object} builder.State
// @Router /builder/section [put]
func (ctrl *BuilderController) SetSectionDraft(c *gin.Context) {
	var req dto.SectionDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.SetSectionDraft(s, req)
	})
}

// CommitSection godoc
// @Summary Commit the section draft (university exams)
// @Description Requires a non-empty section name and at least one committed question; otherwise a silent no-op.
// @Tags builder
// @Produce json
// @Success 200 {object} builder.State
// @Router /builder/sections [post]
func (ctrl *BuilderController) CommitSection(c *gin.Context) {
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.CommitSection(s)
	})
}

// RemoveSection godoc
// @Summary Remove a committed section by index
// @Tags builder
// @Produce json
// @Param index path int true "Section index"
// @Success 200 {object} builder.State
// @Router /builder/sections/{index} [delete]
func (ctrl *BuilderController) RemoveSection(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	ctrl.respond(c, func(s session.Context) (*builder.State, error) {
		return ctrl.builders.RemoveSection(s, idx)
	})
}

// Submit godoc
// @Summary Submit the assembled exam
// @Description One POST carrying the whole tree. On success the builder is cleared; on failure it is preserved for retry.
// @Tags builder
// @Produce json
// @Success 201 {object} dto.ExamSummaryResponse
// @Failure 401 {object} dto.ErrorResponse "No auth token"
// @Failure 404 {object} dto.ErrorResponse "No draft, or a required selection missing"
// @Failure 502 {object} dto.ErrorResponse "Upstream rejected the exam; draft preserved"
// @Router /builder/submit [post]
func (ctrl *BuilderController) Submit(c *gin.Context) {
	created, err := ctrl.builders.Submit(c.Request.Context(), sctx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctrl *BuilderController) respond(c *gin.Context, fn func(session.Context) (*builder.State, error)) {
	state, err := fn(sctx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func indexParam(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid index"})
		return 0, false
	}
	return idx, true
}
