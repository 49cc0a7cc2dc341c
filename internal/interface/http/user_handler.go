package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carepoint-dev/carepoint-api/internal/application"
	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/interface/middleware"
	"github.com/carepoint-dev/carepoint-api/pkg/response"
	"github.com/carepoint-dev/carepoint-api/pkg/validation"
)

// UserHandler exposes profile self-service and admin user management.
type UserHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// updateProfileRequest carries the self-service fields. There is no
// role field here: a role supplied in the payload is simply ignored.
type updateProfileRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Phone    string          `json:"phone"`
	Password string          `json:"password" binding:"omitempty,pwd"`
	Address  *entity.Address `json:"address"`
}

type adminUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	Role  string `json:"role" binding:"omitempty,role"`
}

// GetProfile GET /api/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

// UpdateProfile PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":    res.Profile.ID,
		"name":  res.Profile.Name,
		"email": res.Profile.Email,
		"phone": res.Profile.Phone,
		"token": res.Token,
	}, "profile updated", gin.H{"token_expires_at": res.TokenExpiry})
}

// UploadPicture POST /api/users/profile/picture
func (h *UserHandler) UploadPicture(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	file, header, err := c.Request.FormFile("picture")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "picture file is required", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadProfilePicture(c.Request.Context(), uid, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile_picture": url}, "profile picture updated", nil)
}

// ListUsers GET /api/users (admin)
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, users, "users", gin.H{"count": len(users)})
}

// GetUser GET /api/users/:id (admin)
func (h *UserHandler) GetUser(c *gin.Context) {
	p, err := h.Svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, p, "user", nil)
}

// UpdateUser PUT /api/users/:id (admin). The privileged mutation that
// may change the role; it never touches the password.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req adminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.AdminUpdateUser(c.Request.Context(), c.Param("id"), application.AdminUpdateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	})
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, p, "user updated", nil)
}

// DeleteUser DELETE /api/users/:id (admin)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "user removed", nil)
}
