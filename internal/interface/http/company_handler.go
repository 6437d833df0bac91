package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/aspyra/jobboard-api/internal/application"
	"github.com/aspyra/jobboard-api/pkg/response"
)

type CompanyHandler struct {
	Svc    *app.CompanyService
	Logger *logrus.Logger
}

func NewCompanyHandler(svc *app.CompanyService, logger *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var in app.CompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badPayload(c, err)
		return
	}
	co, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, co)
}

func (h *CompanyHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, list)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var patch app.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badPayload(c, err)
		return
	}
	co, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, co)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, "Company Deleted Successfully")
}
