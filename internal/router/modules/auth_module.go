package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carepoint-dev/carepoint-api/internal/container"
	handlers "github.com/carepoint-dev/carepoint-api/internal/interface/http"
	"github.com/carepoint-dev/carepoint-api/internal/interface/middleware"
)

// AuthModule registers the public registration and login endpoints.
// Both carry tight IP-based rate limits since they are unauthenticated
// and login is the brute-force surface.

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
