package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/aspyra/jobboard-api/internal/interface/http"
)

type CompanyModule struct {
	Handler *handlers.CompanyHandler
}

func NewCompanyModule(h *handlers.CompanyHandler) *CompanyModule {
	return &CompanyModule{Handler: h}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup) {
	companies := rg.Group("/company")
	companies.POST("", m.Handler.Create)
	companies.GET("", m.Handler.List)
	companies.PUT("/:id", m.Handler.Update)
	companies.DELETE("/:id", m.Handler.Delete)
}
