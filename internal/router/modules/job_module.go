package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/aspyra/jobboard-api/internal/interface/http"
)

type JobModule struct {
	Handler *handlers.JobHandler
}

func NewJobModule(h *handlers.JobHandler) *JobModule {
	return &JobModule{Handler: h}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	jobs := rg.Group("/job")
	jobs.POST("", m.Handler.Create)
	jobs.GET("", m.Handler.List)
	jobs.PUT("/:id", m.Handler.Update)
	jobs.DELETE("/:id", m.Handler.Delete)
}
