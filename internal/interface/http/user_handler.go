package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gearshare/gearshare/internal/application"
	"github.com/gearshare/gearshare/internal/interface/middleware"
	"github.com/gearshare/gearshare/pkg/response"
	"github.com/gearshare/gearshare/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Get GET /api/users/:id — public profile, no email
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.Svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, u.AsAuthor(), "user", nil)
}

type updateUsernameRequest struct {
	Username string `json:"username" binding:"required,uname"`
}

// UpdateUsername PUT /api/users/username — self-service only; the target
// user is always the request identity.
func (h *UserHandler) UpdateUsername(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	var req updateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, changed, err := h.Svc.UpdateUsername(c.Request.Context(), uid, req.Username)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to update username", nil)
		return
	}
	msg := "username updated"
	if !changed {
		msg = "username unchanged"
	}
	response.Success(c, http.StatusOK, u.Public(), msg, nil)
}

// UploadAvatar POST /api/users/avatar (multipart: image, required)
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	img, closeImg, err := openImage(fh)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid image", nil)
		return
	}
	defer closeImg()

	u, err := h.Svc.UploadAvatar(c.Request.Context(), uid, img)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to upload image", nil)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "profile image updated", nil)
}
