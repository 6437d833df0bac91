package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/aspyra/jobboard-api/internal/application"
	"github.com/aspyra/jobboard-api/pkg/helpers"
	"github.com/aspyra/jobboard-api/pkg/response"
	"github.com/aspyra/jobboard-api/pkg/validation"
)

// writeError maps service errors onto HTTP status codes and the error envelope.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var (
		verr *app.ValidationError
		ferr *app.ForbiddenError
		perr *app.PersistenceError
	)
	switch {
	case errors.As(err, &verr):
		response.Fail(c, http.StatusBadRequest, "validation failed", verr.Fields)
	case errors.Is(err, app.ErrInvalidCredentials):
		response.Fail(c, http.StatusBadRequest, "Invalid credentials", "Invalid credentials")
	case errors.Is(err, app.ErrConflict):
		response.Fail(c, http.StatusBadRequest, err.Error(), err.Error())
	case errors.As(err, &ferr):
		response.Fail(c, http.StatusForbidden, ferr.Reason, ferr.Reason)
	case errors.Is(err, app.ErrNotFound):
		response.Fail(c, http.StatusNotFound, err.Error(), err.Error())
	case errors.Is(err, app.ErrStorageDisabled):
		response.Fail(c, http.StatusServiceUnavailable, err.Error(), nil)
	case errors.As(err, &perr):
		logError(c, logger, err)
		response.Fail(c, http.StatusInternalServerError, "persistence error", perr.Error())
	default:
		logError(c, logger, err)
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
	}
}

// badPayload reports a body that could not be decoded.
func badPayload(c *gin.Context, err error) {
	response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

func logError(c *gin.Context, logger *logrus.Logger, err error) {
	helpers.LogError(logger, "request failed", err, logrus.Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.FullPath(),
	})
}
