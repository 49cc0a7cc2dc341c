package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carepoint-dev/carepoint-api/internal/container"
	handlers "github.com/carepoint-dev/carepoint-api/internal/interface/http"
	"github.com/carepoint-dev/carepoint-api/internal/interface/middleware"
	"github.com/carepoint-dev/carepoint-api/pkg/helpers"
)

// MedicineModule registers the catalog. Browsing is public, reviews need
// a token, catalog writes are admin only.

type MedicineModule struct {
	Handler *handlers.MedicineHandler
	Tokens  *helpers.TokenManager
	Admin   middleware.AdminChecker
}

func NewMedicineModule(h *handlers.MedicineHandler, tokens *helpers.TokenManager, admin middleware.AdminChecker) *MedicineModule {
	return &MedicineModule{Handler: h, Tokens: tokens, Admin: admin}
}

func (m *MedicineModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/medicines", browseLimiter, m.Handler.List)
	rg.GET("/medicines/:id", browseLimiter, m.Handler.Get)

	auth := rg.Group("/medicines")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.POST("/:id/reviews", middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil), m.Handler.AddReview)

		admin := auth.Group("")
		admin.Use(middleware.RequireAdmin(m.Admin))
		{
			admin.POST("", m.Handler.Create)
			admin.PUT("/:id", m.Handler.Update)
			admin.DELETE("/:id", m.Handler.Delete)
		}
	}
}
