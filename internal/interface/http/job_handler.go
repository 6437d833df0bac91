package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/aspyra/jobboard-api/internal/application"
	"github.com/aspyra/jobboard-api/internal/interface/middleware"
	"github.com/aspyra/jobboard-api/pkg/response"
)

type JobHandler struct {
	Svc    *app.JobService
	Logger *logrus.Logger
}

func NewJobHandler(svc *app.JobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger}
}

func (h *JobHandler) Create(c *gin.Context) {
	var in app.JobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badPayload(c, err)
		return
	}
	job, err := h.Svc.Create(c.Request.Context(), middleware.RequesterFrom(c), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, job)
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Svc.List(c.Request.Context(), middleware.RequesterFrom(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

func (h *JobHandler) Update(c *gin.Context) {
	var patch app.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badPayload(c, err)
		return
	}
	job, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Job Deleted Succesfully"})
}
