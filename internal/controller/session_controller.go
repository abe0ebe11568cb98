package controller

import (
	"net/http"

	"github.com/edustack/dashboard/internal/dto"
	"github.com/edustack/dashboard/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	store session.Store
}

func NewSessionController(store session.Store) *SessionController {
	return &SessionController{store: store}
}

func (ctrl *SessionController) RegisterRoutes(api *gin.RouterGroup) {
	// Opening a session is the only call that does not carry the
	// session header yet.
	api.POST("/session", ctrl.Open)

	authed := api.Group("/session", SessionContext(ctrl.store))
	authed.POST("/token", ctrl.SetToken)
	authed.GET("/context", ctrl.GetContext)
}

// Open godoc
// @Summary Open a tab session
// @Description Issues the session ID the SPA sends as X-Session-ID on every later call. One session per browser tab.
// @Tags session
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /session [post]
func (ctrl *SessionController) Open(c *gin.Context) {
	id := ctrl.store.Create()
	c.JSON(http.StatusCreated, dto.SessionResponse{SessionID: id})
}

// SetToken godoc
// @Summary Store the authorization token
// @Description Saves the remote API token into the tab's context; all upstream calls attach it as "Authorization: Token <value>".
// @Tags session
// @Accept json
// @Produce json
// @Param body body dto.TokenRequest true "Token"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Router /session/token [post]
func (ctrl *SessionController) SetToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	sctx(c).Set(session.KeyToken, req.Token)
	log.Debug().Msg("Authorization token stored for session")
	c.Status(http.StatusNoContent)
}

// GetContext godoc
// @Summary Dump the session context
// @Description Returns every stored key/value for the tab, used by the layout chrome to render breadcrumbs.
// @Tags session
// @Produce json
// @Success 200 {object} dto.ContextResponse
// @Router /session/context [get]
func (ctrl *SessionController) GetContext(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ContextResponse{Values: sctx(c).Snapshot()})
}
