package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/aspyra/jobboard-api/internal/interface/http"
)

// UserModule is the administrative user CRUD under /api/user.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/user")
	users.POST("", m.Handler.Create)
	users.GET("", m.Handler.List)
	users.GET("/:id", m.Handler.Get)
	users.PUT("/:id", m.Handler.Update)
	users.DELETE("/:id", m.Handler.Delete)
}
