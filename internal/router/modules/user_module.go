package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carepoint-dev/carepoint-api/internal/container"
	handlers "github.com/carepoint-dev/carepoint-api/internal/interface/http"
	"github.com/carepoint-dev/carepoint-api/internal/interface/middleware"
	"github.com/carepoint-dev/carepoint-api/pkg/helpers"
)

// UserModule wires profile self-service and admin user management.
// Protected: GET/PUT /api/users/profile, POST /api/users/profile/picture
// Admin:     GET /api/users, GET/PUT/DELETE /api/users/:id

type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
	Admin   middleware.AdminChecker
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenManager, admin middleware.AdminChecker) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens, Admin: admin}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
		auth.POST("/profile/picture", m.Handler.UploadPicture)
	}

	admin := rg.Group("/users")
	admin.Use(middleware.Auth(m.Tokens), middleware.RequireAdmin(m.Admin))
	{
		admin.GET("", m.Handler.ListUsers)
		admin.GET("/:id", m.Handler.GetUser)
		admin.PUT("/:id", m.Handler.UpdateUser)
		admin.DELETE("/:id", m.Handler.DeleteUser)
	}
}
