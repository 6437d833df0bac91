package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/aspyra/jobboard-api/internal/interface/http"
	"github.com/aspyra/jobboard-api/internal/interface/middleware"
)

type ApplicationModule struct {
	Handler *handlers.ApplicationHandler
	RDB     *redis.Client
}

func NewApplicationModule(h *handlers.ApplicationHandler, rdb *redis.Client) *ApplicationModule {
	return &ApplicationModule{Handler: h, RDB: rdb}
}

func (m *ApplicationModule) Register(rg *gin.RouterGroup) {
	apps := rg.Group("/application")
	apps.POST("", m.Handler.Create)
	apps.GET("", m.Handler.List)
	apps.GET("/summary", m.Handler.Summary)
	// uploads are limited per user, or per IP for anonymous callers
	apps.POST("/resume",
		middleware.RateLimit(m.RDB, 20, time.Minute, middleware.KeyByRequester(), nil),
		m.Handler.UploadResume,
	)
	apps.PUT("/:id", m.Handler.Update)
	apps.DELETE("/:id", m.Handler.Delete)
}
