package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gearshare/gearshare/config"
	"github.com/gearshare/gearshare/internal/application"
	"github.com/gearshare/gearshare/internal/interface/middleware"
	"github.com/gearshare/gearshare/pkg/helpers"
	"github.com/gearshare/gearshare/pkg/mailer"
	"github.com/gearshare/gearshare/pkg/response"
	"github.com/gearshare/gearshare/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
	Cfg    *config.Config
	Pub    *helpers.RabbitPublisher
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cfg: cfg, Pub: pub}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
// Creates the account and logs it in immediately: the response carries a
// token exactly like login.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "email already registered", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	// Welcome mail is fire and forget; registration never fails on it.
	if h.Pub != nil && h.Cfg != nil && h.Cfg.MailSendEnabled {
		job := mailer.NewWelcomeJob(u.Email, h.Cfg.AppName, u.Username)
		if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
			h.Logger.WithError(err).WithField("email", u.Email).Warn("welcome mail enqueue failed")
		}
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  u.Public(),
	}, "registered", map[string]any{"expires_at": exp})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password get the same answer.
		response.Error(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  u.Public(),
	}, "login successful", map[string]any{"expires_at": exp})
}

// Me GET /api/auth/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "missing token", nil)
		return
	}
	u, err := h.Svc.GetMe(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "me", nil)
}
