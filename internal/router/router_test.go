package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aspyra/jobboard-api/config"
	"github.com/aspyra/jobboard-api/internal/container"
	"github.com/aspyra/jobboard-api/internal/infrastructure/storage"
	"github.com/aspyra/jobboard-api/internal/interface/middleware"
	"github.com/aspyra/jobboard-api/pkg/helpers"
)

func newEngine(t *testing.T, debug bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwt := helpers.NewJWTManager("router-secret", time.Hour)

	container.SetConfig(&config.Config{AuthRateLimit: 10, DebugMetricsEnabled: debug})
	container.SetLogger(logger)
	container.SetRepositories(storage.NewMemory())
	container.SetRedis(nil)
	container.SetJWT(jwt)
	container.SetHasher(helpers.NewBcryptHasher(bcrypt.MinCost))

	r := gin.New()
	reg := NewRegistry(r)
	reg.Use(middleware.OptionalSession(jwt, logger))
	InitModules(reg)
	reg.RegisterAll()
	return r
}

func TestRootAndRoutes(t *testing.T) {
	r := newEngine(t, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Backend running", w.Body.String())

	for _, path := range []string{"/api/job", "/api/application", "/api/company", "/api/user"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, "[]", w.Body.String(), path)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterThroughRouter(t *testing.T) {
	r := newEngine(t, true)
	body := `{"FullName":"Rita","Email":"rita@example.com","Password":"pw","role":"recruiter"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"role":"recruiter"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
