package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/aspyra/jobboard-api/internal/interface/http"
	"github.com/aspyra/jobboard-api/internal/interface/middleware"
)

// AuthModule serves POST /api/auth/register and POST /api/auth/login, each
// limited per IP.
type AuthModule struct {
	Handler   *handlers.AuthHandler
	RDB       *redis.Client
	PerMinute int
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, perMinute int) *AuthModule {
	return &AuthModule{Handler: h, RDB: rdb, PerMinute: perMinute}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(m.RDB, m.PerMinute, time.Minute, middleware.KeyByIPAndPath(), nil)

	auth := rg.Group("/auth")
	auth.POST("/register", limiter, m.Handler.Register)
	auth.POST("/login", limiter, m.Handler.Login)
}
