package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carepoint-dev/carepoint-api/internal/application"
	"github.com/carepoint-dev/carepoint-api/pkg/response"
	"github.com/carepoint-dev/carepoint-api/pkg/validation"
)

// AuthHandler exposes the public registration and login endpoints.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Password        string `json:"password" binding:"required,pwd"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":    res.Profile.ID,
		"name":  res.Profile.Name,
		"email": res.Profile.Email,
		"phone": res.Profile.Phone,
		"token": res.Token,
	}, "user registered", gin.H{"token_expires_at": res.TokenExpiry})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := errStatus(err)
		response.Error[any](c, status, msg, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": res.Token,
	}, "login successful", gin.H{"token_expires_at": res.TokenExpiry})
}
