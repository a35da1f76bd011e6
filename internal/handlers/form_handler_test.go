package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"formio/internal/models"
	"formio/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// envelope 统一返回格式
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupTestRouter 组装带内存数据库的最小路由
func setupTestRouter(t *testing.T) (*gin.Engine, uint) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Tenant{},
		&models.Form{},
		&models.FormSubmission{},
	))

	tenant, err := services.NewTenantService(db).EnsureDefault()
	require.NoError(t, err)

	formHandler := NewFormHandler(services.NewFormService(db, tenant.ID))
	submissionHandler := NewSubmissionHandler(services.NewSubmissionService(db))
	inviteHandler := NewInviteHandler(services.NewInviteService(db, "http://localhost:8080"))

	router := gin.New()
	forms := router.Group("/api/v1/forms")
	{
		forms.POST("", formHandler.Create)
		forms.GET("", formHandler.GetAll)
		forms.GET("/:id", formHandler.GetByID)
		forms.PUT("/:id", formHandler.Update)
		forms.DELETE("/:id", formHandler.Delete)
		forms.POST("/:id/submit", submissionHandler.Submit)
		forms.GET("/:id/submissions", submissionHandler.List)
		forms.POST("/:id/send-email", inviteHandler.SendEmail)
	}

	return router, tenant.ID
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return recorder, env
}

func createTestForm(t *testing.T, router *gin.Engine) *models.Form {
	t.Helper()

	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/forms",
		`{"title":"T","description":"d","schema":{"components":[]}}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var form models.Form
	require.NoError(t, json.Unmarshal(env.Data, &form))
	return &form
}

func TestCreateFormEndpoint(t *testing.T) {
	router, tenantID := setupTestRouter(t)

	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/forms",
		`{"title":"T","description":"d","schema":{"components":[]}}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 201, env.Code)

	var form models.Form
	require.NoError(t, json.Unmarshal(env.Data, &form))
	assert.NotZero(t, form.ID)
	assert.Equal(t, tenantID, form.TenantID)
	assert.Equal(t, "T", form.Title)
}

func TestCreateFormMissingTitle(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder, env := doRequest(t, router, http.MethodPost, "/api/v1/forms",
		`{"schema":{"components":[]}}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 400, env.Code)
}

func TestGetFormNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder, env := doRequest(t, router, http.MethodGet, "/api/v1/forms/9999", "")

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, 404, env.Code)
}

func TestUpdateFormEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	form := createTestForm(t, router)

	recorder, env := doRequest(t, router, http.MethodPut,
		fmt.Sprintf("/api/v1/forms/%d", form.ID),
		`{"title":"T2","schema":{"a":1}}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var updated models.Form
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "T2", updated.Title)
	assert.JSONEq(t, `{"a":1}`, string(updated.Schema))
}

func TestDeleteFormEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	form := createTestForm(t, router)

	recorder, env := doRequest(t, router, http.MethodDelete,
		fmt.Sprintf("/api/v1/forms/%d", form.ID), "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Form deleted successfully", env.Message)

	recorder, _ = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/forms/%d", form.ID), "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListFormsOmitsSchema(t *testing.T) {
	router, _ := setupTestRouter(t)
	createTestForm(t, router)

	recorder, env := doRequest(t, router, http.MethodGet, "/api/v1/forms", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.NotContains(t, items[0], "schema")
	assert.Contains(t, items[0], "tenant_id")
}

func TestSubmitAndListSubmissions(t *testing.T) {
	router, tenantID := setupTestRouter(t)
	form := createTestForm(t, router)

	recorder, env := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/forms/%d/submit", form.ID),
		`{"data":{"name":"x"}}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var submission models.FormSubmission
	require.NoError(t, json.Unmarshal(env.Data, &submission))
	assert.Equal(t, form.ID, submission.FormID)
	assert.Equal(t, tenantID, submission.TenantID)

	recorder, env = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/forms/%d/submissions", form.ID), "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var submissions []models.FormSubmission
	require.NoError(t, json.Unmarshal(env.Data, &submissions))
	require.Len(t, submissions, 1)
}

func TestListSubmissionsFormNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder, _ := doRequest(t, router, http.MethodGet, "/api/v1/forms/9999/submissions", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestSendEmailEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	form := createTestForm(t, router)

	recorder, env := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/forms/%d/send-email", form.ID),
		`{"email":"user@example.com"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result services.InviteResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, fmt.Sprintf("http://localhost:8080/forms/%d", form.ID), result.FormURL)

	// 非法邮箱被校验拦截
	recorder, _ = doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/forms/%d/send-email", form.ID),
		`{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
