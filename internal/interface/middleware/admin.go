package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carepoint-dev/carepoint-api/pkg/response"
)

// AdminChecker answers whether a subject holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// RequireAdmin gates privileged routes. It runs after Auth, so the
// subject id is already verified; the role check hits the store.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(CtxUserIDKey)
		if uid == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		ok, err := checker.IsAdmin(c.Request.Context(), uid)
		if err != nil || !ok {
			response.Error[any](c, http.StatusForbidden, "admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
