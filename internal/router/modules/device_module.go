package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearshare/gearshare/internal/container"
	handlers "github.com/gearshare/gearshare/internal/interface/http"
	"github.com/gearshare/gearshare/internal/interface/middleware"
	"github.com/gearshare/gearshare/pkg/helpers"
)

// DeviceModule wires the device routes.
// Public: GET /api/devices?user_id=N (device lists are part of a public profile)
// Protected: POST /api/devices, DELETE /api/devices/:id

type DeviceModule struct {
	Handler *handlers.DeviceHandler
	JWT     *helpers.JWTManager
}

func NewDeviceModule(h *handlers.DeviceHandler, jwt *helpers.JWTManager) *DeviceModule {
	return &DeviceModule{Handler: h, JWT: jwt}
}

func (m *DeviceModule) Register(rg *gin.RouterGroup) {
	rg.GET("/devices", m.Handler.List)

	auth := rg.Group("/devices")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Add)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
