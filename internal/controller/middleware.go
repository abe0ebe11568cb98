package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/edustack/dashboard/internal/dto"
	"github.com/edustack/dashboard/internal/service"
	"github.com/edustack/dashboard/internal/session"
	"github.com/edustack/dashboard/internal/upstream"
	"github.com/gin-gonic/gin"
)

// SessionHeader carries the tab session ID on every dashboard request.
const SessionHeader = "X-Session-ID"

const contextKey = "session_context"

// SessionContext resolves the tab session for the request. The ID is
// opaque; an unknown one simply behaves as an empty context, matching
// per-tab storage semantics.
func SessionContext(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(SessionHeader)
		if sid == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.ErrorResponse{Error: "missing " + SessionHeader + " header"})
			return
		}
		c.Set(contextKey, session.NewContext(store, sid))
		c.Next()
	}
}

func sctx(c *gin.Context) session.Context {
	v, _ := c.Get(contextKey)
	return v.(session.Context)
}

// respondError maps the error taxonomy onto HTTP statuses: missing
// token 401, missing selection context 404, upstream failures 502 so
// they are distinguishable from the dashboard's own 4xx validation
// responses, anything else 500. Nothing is retried; the SPA keeps its
// draft and the user resubmits.
func respondError(c *gin.Context, err error) {
	var incomplete session.IncompleteError
	var apiErr *upstream.APIError
	switch {
	case errors.Is(err, session.ErrNoToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &incomplete):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: incomplete.Error()})
	case errors.Is(err, service.ErrNoActiveExam):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &apiErr):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: apiErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

// pageParam reads ?page=; anything unparsable falls back to page 1 and
// out-of-range values are clamped later by pagination.
func pageParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return n
}
