package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shomrim_dispatch/internal/config"
	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/shenikar/shomrim_dispatch/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

type serviceMocks struct {
	incidents *mocks.MockIncidentService
	otp       *mocks.MockOTPService
	ptt       *mocks.MockPTTService
	users     *mocks.MockUserService
	directory *mocks.MockDirectoryService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		otp:       mocks.NewMockOTPService(ctrl),
		ptt:       mocks.NewMockPTTService(ctrl),
		users:     mocks.NewMockUserService(ctrl),
		directory: mocks.NewMockDirectoryService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:          []string{"test-api-key"},
		PTTMaxAudioBytes: 1024,
	}

	handler := NewHandler(Services{
		Incidents: m.incidents,
		OTP:       m.otp,
		PTT:       m.ptt,
		Users:     m.users,
		Directory: m.directory,
	}, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validCreateBody() map[string]any {
	return map[string]any{
		"id":          "inc-1",
		"shcad":       "CAD1234",
		"title":       "Break-in",
		"type":        "burglary",
		"description": "rear window forced",
		"caller":      map[string]any{"name": "Sarah", "isVictim": true},
		"victims":     []map[string]any{{"name": "Sarah"}},
		"suspects":    []map[string]any{{"name": "Unknown male"}, {"name": "Unknown female", "description": "red coat"}},
		"policeInfo":  map[string]any{"cadRef": "CAD-9"},
		"created_by":  "+441",
		"priority":    "high",
	}
}

func TestCreateIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	bodyBytes, _ := json.Marshal(validCreateBody())

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, "inc-1", inc.ID)
			assert.True(t, inc.Caller.IsVictim)
			assert.Len(t, inc.Victims, 1)
			assert.Len(t, inc.Suspects, 2)
			assert.Empty(t, inc.Witnesses)
			require.NotNil(t, inc.PoliceInfo)
			assert.Equal(t, "CAD-9", *inc.PoliceInfo.CadRef)
			// Снимок - это исходное тело запроса, включая неизвестные поля
			assert.JSONEq(t, string(bodyBytes), string(inc.Snapshot))
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "inc-1", resp.ID)
}

func TestCreateIncident_EmptyPoliceInfoObject(t *testing.T) {
	_, m, router := newTestHandler(t)
	body := validCreateBody()
	body["policeInfo"] = map[string]any{}
	bodyBytes, _ := json.Marshal(body)

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Nil(t, inc.PoliceInfo)
			// В снимке объект остаётся как был прислан
			assert.Contains(t, string(inc.Snapshot), `"policeInfo":{}`)
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"id": "inc-1"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body map[string]any)
		field  string
	}{
		{"missing caller", func(b map[string]any) { delete(b, "caller") }, "Caller"},
		{"missing shcad", func(b map[string]any) { delete(b, "shcad") }, "Shcad"},
		{"participant without name", func(b map[string]any) { b["witnesses"] = []map[string]any{{"phone": "1"}} }, "Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			body := validCreateBody()
			tt.mutate(body)

			m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

			bodyBytes, _ := json.Marshal(body)
			w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprintf("Field validation for '%s' failed on the 'required' tag", tt.field))
		})
	}
}

func TestCreateIncident_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"conflict", fmt.Errorf("create: %w", models.ErrConflict), http.StatusConflict, "conflicts"},
		{"storage", fmt.Errorf("create: %w: connection reset", models.ErrStorage), http.StatusInternalServerError, "internal server error"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(tt.err).Times(1)

			bodyBytes, _ := json.Marshal(validCreateBody())
			w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestListIncidents_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	name := "Sarah"
	incidents := []*models.Incident{
		{
			ID:        "inc-2",
			Shcad:     "CAD2",
			Caller:    models.Caller{Name: &name},
			Victims:   []models.Participant{{Name: "Sarah", Role: models.RoleVictim}},
			CreatedAt: time.Now(),
		},
	}

	m.incidents.EXPECT().ListIncidents(gomock.Any()).Return(incidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Sarah", resp[0]["caller_name"])
	// Пустые коллекции - массивы, пустые данные полиции - объект
	assert.Equal(t, []any{}, resp[0]["witnesses"])
	assert.Equal(t, []any{}, resp[0]["notes"])
	assert.Equal(t, map[string]any{}, resp[0]["policeInfo"])
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().ListIncidents(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestExportIncidents(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().ExportIncidents(gomock.Any()).Return([]byte("PK-xlsx"), nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/export", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "incidents.xlsx")
	assert.Equal(t, "PK-xlsx", w.Body.String())
}

func TestUpdateIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	body := `{"status":"resolved","notes":[{"note":"done"}],"customField":null}`

	m.incidents.EXPECT().
		UpdateIncident(gomock.Any(), "inc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update *models.IncidentUpdate) error {
			require.NotNil(t, update.Status)
			assert.Equal(t, "resolved", *update.Status)
			assert.Nil(t, update.Title)
			assert.True(t, update.HasNestedCollections())
			assert.Contains(t, update.Fields, "customField")
			assert.JSONEq(t, body, string(update.Payload))
			return nil
		}).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/incidents/inc-1", bytes.NewBufferString(body), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Incident updated successfully")
}

func TestUpdateIncident_BadBodies(t *testing.T) {
	for _, body := range []string{`[1,2]`, `null`, `{"status": 5}`, `{"status": ""}`} {
		t.Run(body, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.incidents.EXPECT().UpdateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "PUT", "/api/v1/incidents/inc-1", bytes.NewBufferString(body), authHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateIncident_ServiceErrors(t *testing.T) {
	_, m, router := newTestHandler(t)

	gomock.InOrder(
		m.incidents.EXPECT().UpdateIncident(gomock.Any(), "missing", gomock.Any()).
			Return(fmt.Errorf("update: %w", models.ErrNotFound)),
		m.incidents.EXPECT().UpdateIncident(gomock.Any(), "inc-1", gomock.Any()).
			Return(fmt.Errorf("update: %w: payload id mismatch", models.ErrValidation)),
	)

	w := makeRequest(router, "PUT", "/api/v1/incidents/missing", bytes.NewBufferString(`{"status":"x"}`), authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/incidents/inc-1", bytes.NewBufferString(`{"id":"inc-2"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"payload id mismatch"}`, w.Body.String())
}

func TestCreateIncident_ValidationMessageWithoutWrapping(t *testing.T) {
	_, m, router := newTestHandler(t)
	serviceErr := fmt.Errorf("service: could not create incident: %w",
		fmt.Errorf("%w: %s", models.ErrValidation, "victims[0].name is required"))
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(serviceErr).Times(1)

	bodyBytes, _ := json.Marshal(validCreateBody())
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"victims[0].name is required"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "service:")
}

func TestValidationMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"wrapped detail", fmt.Errorf("service: x: %w", fmt.Errorf("%w: title is required", models.ErrValidation)), "title is required"},
		{"detail with colon", fmt.Errorf("%w: status: must not be empty", models.ErrValidation), "status: must not be empty"},
		{"bare sentinel", fmt.Errorf("service: x: %w", models.ErrValidation), "validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validationMessage(tt.err))
		})
	}
}

func TestAddNote(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().
		AddNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, note *models.Note) error {
			assert.Equal(t, "inc-1", note.IncidentID)
			assert.Equal(t, "Police on scene", note.Text)
			assert.True(t, note.IsFollowUp)
			note.ID = 11
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/inc-1/notes",
		bytes.NewBufferString(`{"user_phone":"+441","note":"Police on scene","isFollowUp":true}`), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"id":11}`, w.Body.String())
}

func TestAddNote_MissingIncident(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().AddNote(gomock.Any(), gomock.Any()).Return(fmt.Errorf("note: %w", models.ErrNotFound))

	w := makeRequest(router, "POST", "/api/v1/incidents/missing/notes",
		bytes.NewBufferString(`{"user_phone":"+441","note":"x"}`), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignAndRespond(t *testing.T) {
	_, m, router := newTestHandler(t)
	actor := "+441"

	m.incidents.EXPECT().
		AssignUser(gomock.Any(), "inc-1", "+442", &actor).
		Return(&models.Assignment{ID: 4, IncidentID: "inc-1", UserPhone: "+442", Status: models.AssignmentPending}, nil)
	m.incidents.EXPECT().
		RespondAssignment(gomock.Any(), "inc-1", int64(4), models.AssignmentAccepted, gomock.Any()).
		Return(&models.Assignment{ID: 4, Status: models.AssignmentAccepted}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/inc-1/assignments",
		bytes.NewBufferString(`{"user_phone":"+442","assigned_by":"+441"}`), authHeader)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	w = makeRequest(router, "PUT", "/api/v1/incidents/inc-1/assignments/4",
		bytes.NewBufferString(`{"status":"accepted","user_phone":"+442"}`), authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	// Неверный статус отклоняется до сервиса
	w = makeRequest(router, "PUT", "/api/v1/incidents/inc-1/assignments/4",
		bytes.NewBufferString(`{"status":"maybe"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/incidents/inc-1/assignments/abc",
		bytes.NewBufferString(`{"status":"accepted"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddPoliceInfoAndArrest(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().
		AddPoliceInfo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, info *models.PoliceInfo, actor *string) error {
			assert.Equal(t, "inc-1", info.IncidentID)
			assert.Equal(t, "PC 123", *info.OfficerBadge)
			assert.Equal(t, "+441", *actor)
			return nil
		})
	m.incidents.EXPECT().
		AddArrest(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, arrest *models.Arrest, _ *string) error {
			assert.Equal(t, "John Doe", arrest.Name)
			arrest.ID = 2
			return nil
		})

	w := makeRequest(router, "POST", "/api/v1/incidents/inc-1/police-info",
		bytes.NewBufferString(`{"officerBadge":"PC 123","user_phone":"+441"}`), authHeader)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = makeRequest(router, "POST", "/api/v1/incidents/inc-1/arrests",
		bytes.NewBufferString(`{"name":"John Doe"}`), authHeader)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"id":2}`, w.Body.String())
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	// Health-check доступен без API-ключа
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRoutes_RequireAPIKey(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_OpenWithoutConfiguredKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	incidents := mocks.NewMockIncidentService(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	handler := NewHandler(Services{Incidents: incidents}, logger, &config.Config{})
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	incidents.EXPECT().ListIncidents(gomock.Any()).Return([]*models.Incident{}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func newAuthRouter(keys ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: keys,
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	router := newAuthRouter("valid-key")

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	router := newAuthRouter("other-key", "valid-key")

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	router := newAuthRouter("valid-key")

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	router := newAuthRouter("valid-key")

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logs := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(logs)
	logger.SetFormatter(&logrus.JSONFormatter{})

	router.Use(RequestLogger(logger))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := makeRequest(router, "GET", "/test", nil)
	requestID := w.Header().Get(requestIDHeader)
	assert.NotEmpty(t, requestID)
	assert.Contains(t, logs.String(), requestID)
	assert.Contains(t, logs.String(), `"status":418`)

	w = makeRequest(router, "GET", "/test", nil, map[string]string{requestIDHeader: "req-1"})
	assert.Equal(t, "req-1", w.Header().Get(requestIDHeader))
}
