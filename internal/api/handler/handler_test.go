package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JesusPaz145/nails-appointment-app/internal/dto"
	"github.com/JesusPaz145/nails-appointment-app/internal/service"
	"github.com/JesusPaz145/nails-appointment-app/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	registerResult *dto.TokenResponse
	registerErr    error
	loginResult    *dto.TokenResponse
	loginErr       error
	refreshResult  *dto.TokenResponse
	refreshErr     error
	logoutErr      error
	meResult       *dto.UserResponse
	meErr          error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.TokenResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.meResult, m.meErr
}

// ── Mock AppointmentService ──

type mockAppointmentService struct {
	availResult  []string
	availErr     error
	createResult *dto.AppointmentResponse
	createErr    error
	listResult   []dto.AppointmentResponse
	listErr      error
	updateResult *dto.AppointmentResponse
	updateErr    error
	feedResult   string
	feedErr      error
}

func (m *mockAppointmentService) Availability(_ context.Context, _, _ string) ([]string, error) {
	return m.availResult, m.availErr
}
func (m *mockAppointmentService) Create(_ context.Context, _ string, _ *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockAppointmentService) List(_ context.Context, _, _ string) ([]dto.AppointmentResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockAppointmentService) UpdateStatus(_ context.Context, _, _, _, _ string) (*dto.AppointmentResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockAppointmentService) CalendarFeed(_ context.Context, _ string) (string, error) {
	return m.feedResult, m.feedErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportAppointments(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// withAuth 模拟 JWT 中间件注入的上下文
func withAuth(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Set("token_id", "test-jti")
		c.Set("token_expires_at", time.Now().Add(15*time.Minute))
		c.Next()
	}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "ana",
		Password: "secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "ana",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{registerErr: service.ErrUsernameExists})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Name:     "Ana",
		Username: "ana",
		Password: "secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// AppointmentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAppointmentHandler_Availability_Success(t *testing.T) {
	mock := &mockAppointmentService{
		availResult: []string{"18:00:00", "18:30:00"},
	}
	h := NewAppointmentHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET",
		"/appointments/availability?date=2026-01-05&service_id=6f1e1e52-7b1a-4e8e-9f5d-111111111111", nil)

	r := gin.New()
	r.GET("/appointments/availability", h.Availability)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("18:30:00")) {
		t.Errorf("expected slots in body, got %s", w.Body.String())
	}
}

func TestAppointmentHandler_Availability_MissingParams(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/appointments/availability?date=2026-01-05", nil)

	r := gin.New()
	r.GET("/appointments/availability", h.Availability)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAppointmentHandler_Create_Conflict(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentService{createErr: service.ErrSlotConflict})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/appointments", jsonBody(dto.CreateAppointmentRequest{
		ServiceID: "6f1e1e52-7b1a-4e8e-9f5d-111111111111",
		Date:      "2026-01-05",
		StartTime: "18:30:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/appointments", withAuth("user-ana", "client"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15003 {
		t.Errorf("expected error code 15003, got %d", resp.Code)
	}
}

func TestAppointmentHandler_Create_Unauthenticated(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/appointments", jsonBody(dto.CreateAppointmentRequest{
		ServiceID: "6f1e1e52-7b1a-4e8e-9f5d-111111111111",
		Date:      "2026-01-05",
		StartTime: "18:30:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/appointments", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAppointmentHandler_UpdateStatus_Forbidden(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentService{updateErr: service.ErrClientCancelOnly})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/appointments/appt-1/status",
		jsonBody(dto.UpdateAppointmentStatusRequest{Status: "confirmed"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/appointments/:id/status", withAuth("user-ana", "client"), h.UpdateStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestAppointmentHandler_CalendarFeed(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentService{
		feedResult: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/appointments/calendar.ics", nil)

	r := gin.New()
	r.GET("/appointments/calendar.ics", withAuth("user-ana", "client"), h.CalendarFeed)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("expected text/calendar content type, got %s", ct)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportAppointments_Success(t *testing.T) {
	h := NewExportHandler(&mockExportService{
		buf:      bytes.NewBufferString("fake-xlsx"),
		filename: "预约表_2026-01-01_2026-01-31.xlsx",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/appointments?from=2026-01-01&to=2026-01-31", nil)

	r := gin.New()
	r.GET("/export/appointments", h.ExportAppointments)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestExportHandler_ExportAppointments_InvalidRange(t *testing.T) {
	h := NewExportHandler(&mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/appointments?from=2026-02-01&to=2026-01-01", nil)

	r := gin.New()
	r.GET("/export/appointments", h.ExportAppointments)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportHandler_ExportAppointments_Empty(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportEmpty})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/appointments?from=2026-01-01&to=2026-01-31", nil)

	r := gin.New()
	r.GET("/export/appointments", h.ExportAppointments)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
