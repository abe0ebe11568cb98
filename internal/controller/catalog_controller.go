package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/edustack/dashboard/internal/dto"
	"github.com/edustack/dashboard/internal/service"
	"github.com/edustack/dashboard/internal/session"
	"github.com/edustack/dashboard/internal/upstream"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CatalogController serves the four hierarchy screens: tracks,
// subjects, chapters and universities. Each resource gets the same
// trio: a searched/paginated list, a creation form endpoint and a
// selection endpoint that writes the navigation context.
type CatalogController struct {
	tracks       service.TrackService
	subjects     service.SubjectService
	chapters     service.ChapterService
	universities service.UniversityService
	store        session.Store
}

func NewCatalogController(
	tracks service.TrackService,
	subjects service.SubjectService,
	chapters service.ChapterService,
	universities service.UniversityService,
	store session.Store,
) *CatalogController {
	return &CatalogController{
		tracks:       tracks,
		subjects:     subjects,
		chapters:     chapters,
		universities: universities,
		store:        store,
	}
}

func (ctrl *CatalogController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("", SessionContext(ctrl.store))

	g.GET("/tracks", ctrl.ListTracks)
	g.POST("/tracks", ctrl.CreateTrack)
	g.POST("/tracks/:id/select", ctrl.SelectTrack)

	g.GET("/subjects", ctrl.ListSubjects)
	g.POST("/subjects", ctrl.CreateSubject)
	g.POST("/subjects/:id/select", ctrl.SelectSubject)

	g.GET("/chapters", ctrl.ListChapters)
	g.POST("/chapters", ctrl.CreateChapter)
	g.POST("/chapters/:id/select", ctrl.SelectChapter)

	g.GET("/universities", ctrl.ListUniversities)
	g.POST("/universities", ctrl.CreateUniversity)
	g.POST("/universities/:id/select", ctrl.SelectUniversity)
}

// bindForm accepts a creation form either as JSON or, when a thumbnail
// file rides along, as multipart form-data. The returned cleanup closes
// the attachment and must always be called.
func bindForm[T any](c *gin.Context) (T, *upstream.FileAttachment, func(), error) {
	var req T
	cleanup := func() {}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			return req, nil, cleanup, err
		}
		fh, err := c.FormFile("thumbnail")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return req, nil, cleanup, nil
			}
			return req, nil, cleanup, err
		}
		f, err := fh.Open()
		if err != nil {
			return req, nil, cleanup, fmt.Errorf("opening thumbnail upload: %w", err)
		}
		att := &upstream.FileAttachment{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		}
		return req, att, func() { f.Close() }, nil
	}

	err := c.ShouldBindJSON(&req)
	return req, nil, cleanup, err
}

// --- Tracks ---

// ListTracks godoc
// @Summary List tracks
// @Description All tracks, client-side searched over name/description and paginated at a fixed page size.
// @Tags tracks
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number (clamped)"
// @Success 200 {object} listview.Page[dto.TrackResponse]
// @Failure 401 {object} dto.ErrorResponse "No auth token in session"
// @Failure 502 {object} dto.ErrorResponse "Upstream failure"
// @Router /tracks [get]
func (ctrl *CatalogController) ListTracks(c *gin.Context) {
	page, err := ctrl.tracks.List(c.Request.Context(), sctx(c), c.Query("q"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateTrack godoc
// @Summary Create a track
// @Description JSON body, or multipart form-data with a "thumbnail" file part. Forwarded to the remote API as-is.
// @Tags tracks
// @Accept json
// @Accept mpfd
// @Produce json
// @Param body body dto.TrackCreateRequest true "Track fields"
// @Success 201 {object} dto.TrackResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failure; no upstream call is made"
// @Failure 502 {object} dto.ErrorResponse
// @Router /tracks [post]
func (ctrl *CatalogController) CreateTrack(c *gin.Context) {
	req, thumb, cleanup, err := bindForm[dto.TrackCreateRequest](c)
	defer cleanup()
	if err != nil {
		log.Warn().Err(err).Msg("CreateTrack: invalid form")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	created, err := ctrl.tracks.Create(c.Request.Context(), sctx(c), req, thumb)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SelectTrack godoc
// @Summary Select a track
// @Description Writes the track id and display name into the session context before the SPA navigates deeper.
// @Tags tracks
// @Accept json
// @Param id path string true "Track ID"
// @Param body body dto.SelectTrackRequest true "Display fields"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Router /tracks/{id}/select [post]
func (ctrl *CatalogController) SelectTrack(c *gin.Context) {
	var req dto.SelectTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctrl.tracks.Select(sctx(c), c.Param("id"), req)
	c.Status(http.StatusNoContent)
}

// --- Subjects ---

// ListSubjects godoc
// @Summary List subjects of the selected track
// @Tags subjects
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number (clamped)"
// @Success 200 {object} listview.Page[dto.SubjectResponse]
// @Failure 404 {object} dto.ErrorResponse "No track selected"
// @Router /subjects [get]
func (ctrl *CatalogController) ListSubjects(c *gin.Context) {
	page, err := ctrl.subjects.List(c.Request.Context(), sctx(c), c.Query("q"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateSubject godoc
// @Summary Create a subject under the selected track
// @Tags subjects
// @Accept json
// @Accept mpfd
// @Produce json
// @Param body body dto.SubjectCreateRequest true "Subject fields"
// @Success 201 {object} dto.SubjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No track selected"
// @Router /subjects [post]
func (ctrl *CatalogController) CreateSubject(c *gin.Context) {
	req, thumb, cleanup, err := bindForm[dto.SubjectCreateRequest](c)
	defer cleanup()
	if err != nil {
		log.Warn().Err(err).Msg("CreateSubject: invalid form")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	created, err := ctrl.subjects.Create(c.Request.Context(), sctx(c), req, thumb)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SelectSubject godoc
// @Summary Select a subject
// @Tags subjects
// @Accept json
// @Param id path string true "Subject ID"
// @Param body body dto.SelectSubjectRequest true "Display fields"
// @Success 204 "No Content"
// @Router /subjects/{id}/select [post]
func (ctrl *CatalogController) SelectSubject(c *gin.Context) {
	var req dto.SelectSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctrl.subjects.Select(sctx(c), c.Param("id"), req)
	c.Status(http.StatusNoContent)
}

// --- Chapters ---

// ListChapters godoc
// @Summary List chapters of the selected subject
// @Tags chapters
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number (clamped)"
// @Success 200 {object} listview.Page[dto.ChapterResponse]
// @Failure 404 {object} dto.ErrorResponse "No subject selected"
// @Router /chapters [get]
func (ctrl *CatalogController) ListChapters(c *gin.Context) {
	page, err := ctrl.chapters.List(c.Request.Context(), sctx(c), c.Query("q"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateChapter godoc
// @Summary Create a chapter under the selected subject
// @Tags chapters
// @Accept json
// @Accept mpfd
// @Produce json
// @Param body body dto.ChapterCreateRequest true "Chapter fields"
// @Success 201 {object} dto.ChapterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No subject selected"
// @Router /chapters [post]
func (ctrl *CatalogController) CreateChapter(c *gin.Context) {
	req, thumb, cleanup, err := bindForm[dto.ChapterCreateRequest](c)
	defer cleanup()
	if err != nil {
		log.Warn().Err(err).Msg("CreateChapter: invalid form")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	created, err := ctrl.chapters.Create(c.Request.Context(), sctx(c), req, thumb)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SelectChapter godoc
// @Summary Select a chapter
// @Tags chapters
// @Accept json
// @Param id path string true "Chapter ID"
// @Param body body dto.SelectChapterRequest true "Display fields"
// @Success 204 "No Content"
// @Router /chapters/{id}/select [post]
func (ctrl *CatalogController) SelectChapter(c *gin.Context) {
	var req dto.SelectChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctrl.chapters.Select(sctx(c), c.Param("id"), req)
	c.Status(http.StatusNoContent)
}

// --- Universities ---

// ListUniversities godoc
// @Summary List universities of the selected track
// @Tags universities
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number (clamped)"
// @Success 200 {object} listview.Page[dto.UniversityResponse]
// @Failure 404 {object} dto.ErrorResponse "No track selected"
// @Router /universities [get]
func (ctrl *CatalogController) ListUniversities(c *gin.Context) {
	page, err := ctrl.universities.List(c.Request.Context(), sctx(c), c.Query("q"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateUniversity godoc
// @Summary Create a university under the selected track
// @Tags universities
// @Accept json
// @Accept mpfd
// @Produce json
// @Param body body dto.UniversityCreateRequest true "University fields"
// @Success 201 {object} dto.UniversityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No track selected"
// @Router /universities [post]
func (ctrl *CatalogController) CreateUniversity(c *gin.Context) {
	req, thumb, cleanup, err := bindForm[dto.UniversityCreateRequest](c)
	defer cleanup()
	if err != nil {
		log.Warn().Err(err).Msg("CreateUniversity: invalid form")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	created, err := ctrl.universities.Create(c.Request.Context(), sctx(c), req, thumb)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SelectUniversity godoc
// @Summary Select a university
// @Tags universities
// @Accept json
// @Param id path string true "University ID"
// @Param body body dto.SelectUniversityRequest true "Display fields"
// @Success 204 "No Content"
// @Router /universities/{id}/select [post]
func (ctrl *CatalogController) SelectUniversity(c *gin.Context) {
	var req dto.SelectUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctrl.universities.Select(sctx(c), c.Param("id"), req)
	c.Status(http.StatusNoContent)
}
