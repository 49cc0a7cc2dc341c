package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carepoint-dev/carepoint-api/internal/application"
	"github.com/carepoint-dev/carepoint-api/internal/interface/middleware"
	"github.com/carepoint-dev/carepoint-api/pkg/response"
	"github.com/carepoint-dev/carepoint-api/pkg/validation"
)

type MedicineHandler struct {
	Svc    *application.MedicineService
	Logger *logrus.Logger
}

func NewMedicineHandler(svc *application.MedicineService, logger *logrus.Logger) *MedicineHandler {
	return &MedicineHandler{Svc: svc, Logger: logger}
}

type createMedicineRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description" binding:"required"`
	Price                float64 `json:"price" binding:"required,gte=0"`
	Category             string  `json:"category" binding:"required"`
	Manufacturer         string  `json:"manufacturer"`
	CountInStock         int     `json:"count_in_stock" binding:"gte=0"`
	PrescriptionRequired bool    `json:"prescription_required"`
}

type updateMedicineRequest struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Price                *float64 `json:"price" binding:"omitempty,gte=0"`
	Category             string   `json:"category"`
	Manufacturer         string   `json:"manufacturer"`
	CountInStock         *int     `json:"count_in_stock" binding:"omitempty,gte=0"`
	PrescriptionRequired *bool    `json:"prescription_required"`
}

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// List GET /api/medicines?keyword=
func (h *MedicineHandler) List(c *gin.Context) {
	keyword := c.Query("keyword")
	out, err := h.Svc.List(c.Request.Context(), keyword)
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, out, "medicines", gin.H{"count": len(out)})
}

// Get GET /api/medicines/:id
func (h *MedicineHandler) Get(c *gin.Context) {
	m, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, m, "medicine", nil)
}

// Create POST /api/medicines (admin)
func (h *MedicineHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.Create(c.Request.Context(), uid, application.MedicineInput{
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		Category:             req.Category,
		Manufacturer:         req.Manufacturer,
		CountInStock:         req.CountInStock,
		PrescriptionRequired: req.PrescriptionRequired,
	})
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, m, "medicine created", nil)
}

// Update PUT /api/medicines/:id (admin)
func (h *MedicineHandler) Update(c *gin.Context) {
	var req updateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateMedicineInput{
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		Category:             req.Category,
		Manufacturer:         req.Manufacturer,
		CountInStock:         req.CountInStock,
		PrescriptionRequired: req.PrescriptionRequired,
	})
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, m, "medicine updated", nil)
}

// Delete DELETE /api/medicines/:id (admin)
func (h *MedicineHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "medicine removed", nil)
}

// AddReview POST /api/medicines/:id/reviews
func (h *MedicineHandler) AddReview(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.AddReview(c.Request.Context(), c.Param("id"), uid, req.Rating, req.Comment)
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, m, "review added", nil)
}
