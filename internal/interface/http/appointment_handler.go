package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carepoint-dev/carepoint-api/internal/application"
	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/interface/middleware"
	"github.com/carepoint-dev/carepoint-api/pkg/response"
	"github.com/carepoint-dev/carepoint-api/pkg/validation"
)

type AppointmentHandler struct {
	Svc    *application.AppointmentService
	Logger *logrus.Logger
}

func NewAppointmentHandler(svc *application.AppointmentService, logger *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

type createAppointmentRequest struct {
	DoctorID string          `json:"doctor_id" binding:"required,uuid"`
	Date     time.Time       `json:"date" binding:"required"`
	TimeSlot entity.TimeSlot `json:"time_slot" binding:"required"`
	Type     string          `json:"type" binding:"omitempty,oneof=in-person virtual"`
	Reason   string          `json:"reason" binding:"required"`
	Symptoms []string        `json:"symptoms"`
	Notes    string          `json:"notes"`
}

type updateAppointmentRequest struct {
	Status   string           `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no-show"`
	Reason   string           `json:"reason"`
	Date     *time.Time       `json:"date"`
	TimeSlot *entity.TimeSlot `json:"time_slot"`
	Notes    string           `json:"notes"`
}

// Create POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), uid, application.CreateAppointmentInput{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
		Type:     req.Type,
		Reason:   req.Reason,
		Symptoms: req.Symptoms,
		Notes:    req.Notes,
	})
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, a, "appointment created", nil)
}

// List GET /api/appointments (admin)
func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, out, "appointments", gin.H{"count": len(out)})
}

// ListMine GET /api/appointments/mine
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.ListMine(c.Request.Context(), uid)
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, out, "appointments", gin.H{"count": len(out)})
}

// Get GET /api/appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, a, "appointment", nil)
}

// Update PUT /api/appointments/:id
func (h *AppointmentHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"), uid, application.UpdateAppointmentInput{
		Status:   req.Status,
		Reason:   req.Reason,
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
		Notes:    req.Notes,
	})
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, a, "appointment updated", nil)
}

// Delete DELETE /api/appointments/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "appointment removed", nil)
}
