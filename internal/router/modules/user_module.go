package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearshare/gearshare/internal/container"
	handlers "github.com/gearshare/gearshare/internal/interface/http"
	"github.com/gearshare/gearshare/internal/interface/middleware"
	"github.com/gearshare/gearshare/pkg/helpers"
)

// UserModule wires profile routes.
// Public: GET /api/users/:id
// Protected: PUT /api/users/username, POST /api/users/avatar

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users/:id", m.Handler.Get)

	auth := rg.Group("/users")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.PUT("/username", m.Handler.UpdateUsername)
		auth.POST("/avatar", m.Handler.UploadAvatar)
	}
}
