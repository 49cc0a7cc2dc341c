package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carepoint-dev/carepoint-api/internal/application"
	"github.com/carepoint-dev/carepoint-api/internal/interface/middleware"
	"github.com/carepoint-dev/carepoint-api/pkg/response"
)

type CartHandler struct {
	Svc *application.CartService
}

func NewCartHandler(svc *application.CartService) *CartHandler {
	return &CartHandler{Svc: svc}
}

// List GET /api/cart
func (h *CartHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.ListCart(c.Request.Context(), uid)
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, items, "cart", gin.H{"count": len(items)})
}
