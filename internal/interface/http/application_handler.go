package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/aspyra/jobboard-api/internal/application"
	"github.com/aspyra/jobboard-api/internal/domain/entity"
	"github.com/aspyra/jobboard-api/internal/interface/middleware"
	"github.com/aspyra/jobboard-api/pkg/helpers"
	"github.com/aspyra/jobboard-api/pkg/response"
)

type ApplicationHandler struct {
	Svc    *app.ApplicationService
	Tokens middleware.TokenDecoder
	Logger *logrus.Logger
}

func NewApplicationHandler(svc *app.ApplicationService, tokens middleware.TokenDecoder, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{Svc: svc, Tokens: tokens, Logger: logger}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var in app.ApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badPayload(c, err)
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), middleware.RequesterFrom(c), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, a)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Svc.List(c.Request.Context(), middleware.RequesterFrom(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, apps)
}

func (h *ApplicationHandler) Summary(c *gin.Context) {
	sum, err := h.Svc.Summary(c.Request.Context(), middleware.RequesterFrom(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, sum)
}

// requestedStatus returns the non-empty status carried under "Status" or
// "status". A present but non-string value is a validation error.
func requestedStatus(body map[string]json.RawMessage) (string, bool, error) {
	for _, key := range []string{"Status", "status"} {
		raw, ok := body[key]
		if !ok || string(raw) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false, &app.ValidationError{Fields: map[string]string{key: "must be a string"}}
		}
		if s != "" {
			return s, true, nil
		}
	}
	return "", false, nil
}

// Update changes the status when the body carries one, which requires a valid
// bearer token, and applies every other field without restriction.
func (h *ApplicationHandler) Update(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		badPayload(c, err)
		return
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		badPayload(c, err)
		return
	}
	var patch app.ApplicationPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		badPayload(c, err)
		return
	}
	status, hasStatus, err := requestedStatus(body)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	var updated *entity.Application
	if hasStatus {
		r, err := middleware.ResolveRequired(c.GetHeader("Authorization"), h.Tokens)
		if err != nil && !errors.Is(err, middleware.ErrMissingToken) {
			response.Fail(c, http.StatusForbidden, "Invalid authorization", "Invalid authorization")
			return
		}
		if updated, err = h.Svc.UpdateStatus(ctx, r, id, status); err != nil {
			writeError(c, h.Logger, err)
			return
		}
	}
	if !hasStatus || !patch.Empty() {
		if updated, err = h.Svc.UpdateFields(ctx, id, patch); err != nil {
			writeError(c, h.Logger, err)
			return
		}
	}
	response.JSON(c, http.StatusOK, updated)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

// UploadResume accepts a multipart "file" and returns the stored file's URL.
func (h *ApplicationHandler) UploadResume(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, h.Logger, &app.ValidationError{Fields: map[string]string{"file": "is required"}})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadResume(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	helpers.LogInfo(h.Logger, "resume uploaded", logrus.Fields{
		"request_id": c.GetString("request_id"),
		"requester":  middleware.RequesterFrom(c).ID,
		"size":       fh.Size,
	})
	response.JSON(c, http.StatusCreated, gin.H{"url": url})
}
