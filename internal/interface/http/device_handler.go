package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gearshare/gearshare/internal/application"
	"github.com/gearshare/gearshare/internal/interface/middleware"
	"github.com/gearshare/gearshare/pkg/response"
)

type DeviceHandler struct {
	Svc    *application.DeviceService
	Logger *logrus.Logger
}

func NewDeviceHandler(svc *application.DeviceService, logger *logrus.Logger) *DeviceHandler {
	return &DeviceHandler{Svc: svc, Logger: logger}
}

// Add POST /api/devices (multipart: name, optional comment + image)
func (h *DeviceHandler) Add(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	name := c.PostForm("name")
	if name == "" {
		response.Error(c, http.StatusBadRequest, "device name is required", nil)
		return
	}
	comment := c.PostForm("comment")

	img, closeImg, err := imageFromForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid image", nil)
		return
	}
	defer closeImg()

	d, err := h.Svc.Add(c.Request.Context(), uid, name, comment, img)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to add device", nil)
		return
	}
	response.Success(c, http.StatusCreated, d, "device added", nil)
}

// List GET /api/devices?user_id=N — public, device lists belong to the profile
func (h *DeviceHandler) List(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "user_id is required", nil)
		return
	}

	devices, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load devices", nil)
		return
	}
	response.Success(c, http.StatusOK, devices, "devices", nil)
}

// Delete DELETE /api/devices/:id — owner only
func (h *DeviceHandler) Delete(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.Remove(c.Request.Context(), uid, id); err != nil {
		switch {
		case errors.Is(err, application.ErrDeviceNotFound):
			response.Error(c, http.StatusNotFound, "device not found", nil)
		case errors.Is(err, application.ErrForbidden):
			response.Error(c, http.StatusForbidden, "not your device", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to delete device", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "device deleted", nil)
}
