package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/aspyra/jobboard-api/internal/application"
	"github.com/aspyra/jobboard-api/pkg/response"
)

type AuthHandler struct {
	Svc    *app.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *app.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in app.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badPayload(c, err)
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in app.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badPayload(c, err)
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}
