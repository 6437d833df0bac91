package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	app "github.com/aspyra/jobboard-api/internal/application"
	"github.com/aspyra/jobboard-api/internal/infrastructure/memory"
	"github.com/aspyra/jobboard-api/internal/interface/middleware"
	"github.com/aspyra/jobboard-api/pkg/helpers"
)

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishJSON(ctx context.Context, eventType string, body any) error {
	return m.Called(ctx, eventType, body).Error(0)
}

type mockUploader struct{ mock.Mock }

func (m *mockUploader) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, objectPath, contentType, r)
	return args.String(0), args.Error(1)
}

type testAPI struct {
	engine *gin.Engine
	apps   *app.ApplicationService
	events *mockPublisher
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwt := helpers.NewJWTManager("handler-test-secret", time.Hour)
	hasher := helpers.NewBcryptHasher(bcrypt.MinCost)
	users := memory.NewUserRepository()
	jobs := memory.NewJobRepository()
	events := &mockPublisher{}

	authH := NewAuthHandler(app.NewAuthService(users, jwt, hasher, logger), logger)
	jobH := NewJobHandler(app.NewJobService(jobs, logger), logger)
	appSvc := app.NewApplicationService(memory.NewApplicationRepository(), jobs, events, nil, logger)
	appH := NewApplicationHandler(appSvc, jwt, logger)
	companyH := NewCompanyHandler(app.NewCompanyService(memory.NewCompanyRepository(), logger), logger)
	userH := NewUserHandler(app.NewUserService(users, hasher, logger), logger)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(), middleware.OptionalSession(jwt, logger))
	api := r.Group("/api")
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)
	api.POST("/job", jobH.Create)
	api.GET("/job", jobH.List)
	api.PUT("/job/:id", jobH.Update)
	api.DELETE("/job/:id", jobH.Delete)
	api.POST("/application", appH.Create)
	api.GET("/application", appH.List)
	api.GET("/application/summary", appH.Summary)
	api.POST("/application/resume", appH.UploadResume)
	api.PUT("/application/:id", appH.Update)
	api.DELETE("/application/:id", appH.Delete)
	api.POST("/company", companyH.Create)
	api.GET("/company", companyH.List)
	api.PUT("/company/:id", companyH.Update)
	api.DELETE("/company/:id", companyH.Delete)
	api.POST("/user", userH.Create)
	api.GET("/user", userH.List)
	api.GET("/user/:id", userH.Get)
	api.PUT("/user/:id", userH.Update)
	api.DELETE("/user/:id", userH.Delete)

	return &testAPI{engine: r, apps: appSvc, events: events}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

type session struct {
	Token string `json:"token"`
	User  struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	} `json:"user"`
}

func (a *testAPI) register(t *testing.T, email, role string) session {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"FullName": email, "Email": email, "Password": "secret123", "role": role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var s session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	return s
}

type errorBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var e errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	assert.False(t, e.Success)
	return e
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

var engineerJob = gin.H{
	"JobsName": "Engineer", "JobsType": "Full-time", "JobDesc": "Build services",
	"Requirements": "Go", "Location": "Remote", "Salary": 1200,
}

func applicationFor(title string) gin.H {
	return gin.H{
		"JobTitle": title, "CandidateName": "Yara", "Resume": "https://cv.example/y.pdf",
		"Status": "Pending", "AppliedDate": "2024-05-01", "UpdatedDate": "2024-05-01",
	}
}

type jobBody struct {
	ID        string `json:"id"`
	Name      string `json:"JobsName"`
	CreatedBy string `json:"createdBy"`
	Status    string `json:"status"`
}

type appBody struct {
	ID               string `json:"id"`
	CandidateName    string `json:"CandidateName"`
	Status           string `json:"Status"`
	NormalizedStatus string `json:"status"`
	CreatedBy        string `json:"createdBy"`
}

func TestStatusChangeOwnership(t *testing.T) {
	api := newTestAPI(t)
	x := api.register(t, "x@example.com", "recruiter")
	z := api.register(t, "z@example.com", "recruiter")
	y := api.register(t, "y@example.com", "jobseeker")

	w := api.do(t, http.MethodPost, "/api/job", x.Token, engineerJob)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decode[jobBody](t, w)
	assert.Equal(t, x.User.ID, job.CreatedBy)
	assert.Equal(t, "Active", job.Status)

	w = api.do(t, http.MethodPost, "/api/application", y.Token, applicationFor("Engineer"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	application := decode[appBody](t, w)
	assert.Equal(t, y.User.ID, application.CreatedBy)
	path := "/api/application/" + application.ID

	w = api.do(t, http.MethodPut, path, z.Token, gin.H{"Status": "Approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Only the job owner or admin can change application status", decodeError(t, w).Message)

	w = api.do(t, http.MethodPut, path, "", gin.H{"status": "Approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Authorization required to change application status", decodeError(t, w).Message)

	w = api.do(t, http.MethodPut, path, "not-a-token", gin.H{"Status": "Approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid authorization", decodeError(t, w).Message)

	api.events.On("PublishJSON", mock.Anything, app.EventStatusChanged, mock.MatchedBy(func(e app.StatusChanged) bool {
		return e.ApplicationID == application.ID && e.PreviousStatus == "Pending" && e.Status == "Approved" && e.ChangedBy == x.User.ID
	})).Return(nil).Once()

	w = api.do(t, http.MethodPut, path, x.Token, gin.H{"Status": "Approved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Approved", decode[appBody](t, w).Status)
	api.events.AssertExpectations(t)

	w = api.do(t, http.MethodGet, "/api/application", x.Token, nil)
	listed := decode[[]appBody](t, w)
	require.Len(t, listed, 1)
	assert.Equal(t, "approved", listed[0].NormalizedStatus)
	assert.Equal(t, "Approved", listed[0].Status)
}

func TestStatusChangeWithoutMatchingJobNeedsAdmin(t *testing.T) {
	api := newTestAPI(t)
	x := api.register(t, "x@example.com", "recruiter")

	w := api.do(t, http.MethodPost, "/api/application", "", applicationFor("Ghost role"))
	require.Equal(t, http.StatusOK, w.Code)
	id := decode[appBody](t, w).ID

	w = api.do(t, http.MethodPut, "/api/application/"+id, x.Token, gin.H{"Status": "Rejected"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Only admin can change application status for this application", decodeError(t, w).Message)
}

func TestApplicationUpdateWithoutStatusIsOpen(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(t, http.MethodPost, "/api/application", "", applicationFor("Engineer"))
	id := decode[appBody](t, w).ID

	w = api.do(t, http.MethodPut, "/api/application/"+id, "", gin.H{"CandidateName": "Renamed", "Status": ""})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[appBody](t, w)
	assert.Equal(t, "Renamed", got.CandidateName)
	assert.Equal(t, "Pending", got.Status)

	w = api.do(t, http.MethodPut, "/api/application/"+id, "", gin.H{"Status": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodDelete, "/api/application/"+id, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodDelete, "/api/application/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListsAreScopedByRole(t *testing.T) {
	api := newTestAPI(t)
	x := api.register(t, "x@example.com", "recruiter")
	z := api.register(t, "z@example.com", "recruiter")
	y := api.register(t, "y@example.com", "jobseeker")

	api.do(t, http.MethodPost, "/api/job", x.Token, engineerJob)
	api.do(t, http.MethodPost, "/api/application", y.Token, applicationFor("Engineer"))
	api.do(t, http.MethodPost, "/api/application", "", applicationFor("Engineer"))

	w := api.do(t, http.MethodGet, "/api/job", z.Token, nil)
	assert.JSONEq(t, "[]", w.Body.String())
	assert.Len(t, decode[[]jobBody](t, api.do(t, http.MethodGet, "/api/job", "", nil)), 1)
	assert.Len(t, decode[[]jobBody](t, api.do(t, http.MethodGet, "/api/job", y.Token, nil)), 1)

	assert.Len(t, decode[[]appBody](t, api.do(t, http.MethodGet, "/api/application", x.Token, nil)), 2)
	assert.Len(t, decode[[]appBody](t, api.do(t, http.MethodGet, "/api/application", z.Token, nil)), 0)
	assert.Len(t, decode[[]appBody](t, api.do(t, http.MethodGet, "/api/application", y.Token, nil)), 1)
	assert.Len(t, decode[[]appBody](t, api.do(t, http.MethodGet, "/api/application", "", nil)), 2)

	sum := decode[app.StatusSummary](t, api.do(t, http.MethodGet, "/api/application/summary", y.Token, nil))
	assert.Equal(t, app.StatusSummary{Total: 1, Pending: 1}, sum)
}

func TestRegisterAndLogin(t *testing.T) {
	api := newTestAPI(t)
	s := api.register(t, "admin-wannabe@example.com", "admin")
	assert.Equal(t, "jobseeker", s.User.Role)

	w := api.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"FullName": "Again", "Email": "admin-wannabe@example.com", "Password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "Email already registered")

	w = api.do(t, http.MethodPost, "/api/auth/register", "", gin.H{"Email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(decodeError(t, w).Error), "FullName")

	w = api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"Email": "admin-wannabe@example.com", "Password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[session](t, w).Token)

	wrongPwd := api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"Email": "admin-wannabe@example.com", "Password": "nope"})
	unknown := api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"Email": "ghost@example.com", "Password": "nope"})
	assert.Equal(t, http.StatusBadRequest, wrongPwd.Code)
	assert.Equal(t, wrongPwd.Code, unknown.Code)
	a, b := decodeError(t, wrongPwd), decodeError(t, unknown)
	assert.Equal(t, a.Message, b.Message)
	assert.JSONEq(t, string(a.Error), string(b.Error))
}

func TestRegisterAcceptsFormNumbers(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"FullName": "Blank Phone", "Email": "blank@example.com", "Password": "secret123", "PhoneNo": "", "role": "jobseeker",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	blankID := decode[session](t, w).User.ID
	blank := decode[map[string]any](t, api.do(t, http.MethodGet, "/api/user/"+blankID, "", nil))
	assert.NotContains(t, blank, "PhoneNo")

	w = api.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"FullName": "Typed Phone", "Email": "typed@example.com", "Password": "secret123",
		"PhoneNo": "9876543210", "Pincode": 560001, "role": "recruiter",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	typedID := decode[session](t, w).User.ID
	typed := decode[map[string]any](t, api.do(t, http.MethodGet, "/api/user/"+typedID, "", nil))
	assert.EqualValues(t, 9876543210, typed["PhoneNo"])
	assert.EqualValues(t, 560001, typed["Pincode"])

	w = api.do(t, http.MethodPut, "/api/user/"+typedID, "", gin.H{"PhoneNo": "", "Address": "MG Road"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[map[string]any](t, w)
	assert.NotContains(t, updated, "PhoneNo")
	assert.EqualValues(t, 560001, updated["Pincode"])

	w = api.do(t, http.MethodPut, "/api/user/"+typedID, "", gin.H{"PhoneNo": "call me"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"PhoneNo":"must be a number"}`, string(decodeError(t, w).Error))
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"FullName": "Long", "Email": "long@example.com", "Password": strings.Repeat("p", 80),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	e := decodeError(t, w)
	assert.Equal(t, "validation failed", e.Message)
	assert.JSONEq(t, `{"Password":"must be at most 72 bytes"}`, string(e.Error))

	w = api.do(t, http.MethodPost, "/api/user", "", gin.H{
		"FullName": "Long", "Email": "long@example.com", "Password": strings.Repeat("p", 73),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"FullName": "Edge", "Email": "edge@example.com", "Password": strings.Repeat("p", 72),
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestJobValidationAndOpenCRUD(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/job", "", gin.H{"JobsName": "Only a name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	e := decodeError(t, w)
	assert.Equal(t, "validation failed", e.Message)
	assert.Contains(t, string(e.Error), "JobsType")
	assert.Contains(t, string(e.Error), "Salary")

	w = api.do(t, http.MethodPost, "/api/job", "", gin.H{"JobsName": "x", "Salary": "lots"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPost, "/api/job", "", engineerJob)
	require.Equal(t, http.StatusCreated, w.Code)
	job := decode[jobBody](t, w)
	assert.Empty(t, job.CreatedBy)

	w = api.do(t, http.MethodPut, "/api/job/"+job.ID, "", gin.H{"status": "Closed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Closed", decode[jobBody](t, w).Status)

	w = api.do(t, http.MethodPut, "/api/job/missing", "", gin.H{"status": "Closed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodDelete, "/api/job/"+job.ID, "", nil)
	assert.JSONEq(t, `{"message":"Job Deleted Succesfully"}`, w.Body.String())
}

func TestCompanyAndUserCRUD(t *testing.T) {
	api := newTestAPI(t)
	company := gin.H{
		"CompanyName": "Acme", "RegistrationNo": "REG-1", "CompanyType": "Private",
		"CompanyNature": "IT", "CompanyAddress": "Main St", "ContactNo": 5551234, "Email": "hr@acme.test",
	}
	w := api.do(t, http.MethodPost, "/api/company", "", company)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := decode[struct {
		ID string `json:"id"`
	}](t, w).ID

	w = api.do(t, http.MethodPost, "/api/company", "", company)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPut, "/api/company/"+id, "", gin.H{"CompanyNature": "Consulting"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodDelete, "/api/company/"+id, "", nil)
	assert.JSONEq(t, `"Company Deleted Successfully"`, w.Body.String())

	w = api.do(t, http.MethodPost, "/api/user", "", gin.H{
		"FullName": "Root", "Email": "root@example.com", "Password": "pw", "role": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "Password")

	users := decode[[]map[string]any](t, api.do(t, http.MethodGet, "/api/user", "", nil))
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0]["role"])
	userID := users[0]["id"].(string)

	w = api.do(t, http.MethodGet, "/api/user/"+userID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodPut, "/api/user/"+userID, "", gin.H{"FullName": "Root User"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodDelete, "/api/user/"+userID, "", nil)
	assert.JSONEq(t, `"User Deleted Successfully"`, w.Body.String())
	w = api.do(t, http.MethodGet, "/api/user/"+userID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func multipartFile(t *testing.T, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadResume(t *testing.T) {
	api := newTestAPI(t)

	body, ct := multipartFile(t, "cv.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/application/resume", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	up := &mockUploader{}
	up.On("Upload", mock.Anything, mock.MatchedBy(func(p string) bool {
		return len(p) > len("resumes/") && p[:8] == "resumes/" && p[len(p)-4:] == ".pdf"
	}), mock.Anything, mock.Anything).Return("https://storage.googleapis.com/b/resumes/x.pdf", nil).Once()
	api.apps.Resumes = up

	body, ct = multipartFile(t, "cv.pdf", []byte("%PDF-1.4"))
	req = httptest.NewRequest(http.MethodPost, "/api/application/resume", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"url":"https://storage.googleapis.com/b/resumes/x.pdf"}`, w.Body.String())

	body, ct = multipartFile(t, "cv.exe", []byte("MZ"))
	req = httptest.NewRequest(http.MethodPost, "/api/application/resume", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	up.AssertExpectations(t)
}
