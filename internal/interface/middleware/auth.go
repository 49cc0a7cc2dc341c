package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carepoint-dev/carepoint-api/pkg/helpers"
	"github.com/carepoint-dev/carepoint-api/pkg/response"
)

// CtxUserIDKey is the Gin context key carrying the verified subject id.
// Protected handlers read it instead of any ambient/global state.
const CtxUserIDKey = "userID"

// Auth extracts the bearer token, verifies it statelessly, and injects
// the subject id into the context. Expired and malformed tokens are
// reported distinctly, both as 401.
func Auth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		uid, err := tokens.Verify(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = "token expired"
			}
			response.Error[any](c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
