package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/carepoint-dev/carepoint-api/internal/interface/http"
	"github.com/carepoint-dev/carepoint-api/internal/interface/middleware"
	"github.com/carepoint-dev/carepoint-api/pkg/helpers"
)

type CartModule struct {
	Handler *handlers.CartHandler
	Tokens  *helpers.TokenManager
}

func NewCartModule(h *handlers.CartHandler, tokens *helpers.TokenManager) *CartModule {
	return &CartModule{Handler: h, Tokens: tokens}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/cart")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.GET("", m.Handler.List)
	}
}
