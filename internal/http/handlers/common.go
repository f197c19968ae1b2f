package handlers

import (
	"net/http"
	"strconv"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var jwtSecret = []byte("super-secret-key-change-me")

// Configure injects runtime settings shared by the handlers.
func Configure(env intconfig.Env) {
	if env.JWTSecret != "" {
		jwtSecret = []byte(env.JWTSecret)
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "empty body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload: "+err.Error())
		return false
	}
	return true
}

// pathID parses the :id route param.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid id")
		return 0, false
	}
	return id, true
}

// mustCurrentUser returns the authenticated identity or aborts with 401.
func mustCurrentUser(c *gin.Context) (domain.RequestContext, bool) {
	rc, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "authentication required")
	}
	return rc, ok
}
