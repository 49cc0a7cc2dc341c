package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carepoint-dev/carepoint-api/internal/container"
	handlers "github.com/carepoint-dev/carepoint-api/internal/interface/http"
	"github.com/carepoint-dev/carepoint-api/internal/interface/middleware"
	"github.com/carepoint-dev/carepoint-api/pkg/helpers"
)

// AppointmentModule registers booking routes. Everything requires a
// bearer token; the full listing is admin only.

type AppointmentModule struct {
	Handler *handlers.AppointmentHandler
	Tokens  *helpers.TokenManager
	Admin   middleware.AdminChecker
}

func NewAppointmentModule(h *handlers.AppointmentHandler, tokens *helpers.TokenManager, admin middleware.AdminChecker) *AppointmentModule {
	return &AppointmentModule{Handler: h, Tokens: tokens, Admin: admin}
}

func (m *AppointmentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/appointments")
	auth.Use(middleware.Auth(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("/mine", m.Handler.ListMine)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.GET("", middleware.RequireAdmin(m.Admin), m.Handler.List)
	}
}
