package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearshare/gearshare/internal/container"
	handlers "github.com/gearshare/gearshare/internal/interface/http"
	"github.com/gearshare/gearshare/internal/interface/middleware"
	"github.com/gearshare/gearshare/pkg/helpers"
)

// PostModule wires the post feed, CRUD and like routes.
// All routes require a verified identity.

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/posts")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/my-posts", m.Handler.MyPosts)
		auth.GET("/favorites", m.Handler.Favorites)
		auth.GET("/:id", m.Handler.Get)
		auth.POST("/like", m.Handler.ToggleLike)
		auth.PUT("/:id", m.Handler.Edit)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
