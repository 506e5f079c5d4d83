package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/infra/backend"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/present/rest/middleware"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/service"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/usecase"
)

// --- mocks ---

type mockSummarizer struct{}

func (m *mockSummarizer) Summarize(ctx context.Context, query string, lang domain.Language) (string, error) {
	return "No records found.", nil
}

func newTestServer() *echo.Echo {
	mock := backend.NewMock()
	directory := usecase.NewDirectoryUsecase(mock, mock)
	search := usecase.NewSearchUsecase(directory, &mockSummarizer{})
	auth := service.NewAuthService("admin123")

	h := NewHandler(directory, search, auth, "demo")
	e := echo.New()
	h.RegisterRoutes(e, middleware.NewAdminMiddleware(auth))
	return e
}

// --- tests ---

func TestHandleProfilesServesFallbackInDemoMode(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles?lang=so", nil)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	var profiles []domain.Profile
	if err := json.Unmarshal(res.Body.Bytes(), &profiles); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(profiles) == 0 {
		t.Fatalf("directory must never be empty")
	}
	if profiles[0].CategoryLabel == "" {
		t.Fatalf("expected localized category labels")
	}
}

func TestHandleSearchLocalMatch(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=amina&lang=en", nil)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(res.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(result.Profiles) == 0 {
		t.Fatalf("expected a local match for amina")
	}
	if result.AISummary != "" {
		t.Fatalf("summary must be empty for local matches")
	}
}

func TestHandleSearchRequiresQuery(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.Code)
	}
}

func TestAdminRoutesRejectMissingSecret(t *testing.T) {
	e := newTestServer()

	body, _ := json.Marshal(domain.DossierEdit{FullName: "X", Category: "Politics"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dossiers", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.Code)
	}
}

func TestAdminSaveSurfacesBackendError(t *testing.T) {
	e := newTestServer()

	// The mock backend rejects writes; the admin must see that message.
	body, _ := json.Marshal(domain.DossierEdit{FullName: "X", Category: "Politics"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dossiers", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer admin123")
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", res.Code)
	}
	if !bytes.Contains(res.Body.Bytes(), []byte("backend not configured")) {
		t.Fatalf("expected verbatim backend message, got %s", res.Body.String())
	}
}

func TestAdminSaveRejectsInvalidForm(t *testing.T) {
	e := newTestServer()

	body, _ := json.Marshal(domain.DossierEdit{Role: "orphan"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dossiers", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer admin123")
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.Code)
	}
}

func TestHandleAdminLogin(t *testing.T) {
	e := newTestServer()

	body, _ := json.Marshal(map[string]string{"secret": "admin123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	body, _ = json.Marshal(map[string]string{"secret": "nope"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res = httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.Code)
	}
}

func TestHandleProfileNotFound(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/nope", nil)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.Code)
	}
}

func TestHandleStatusReportsMode(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	var status map[string]any
	if err := json.Unmarshal(res.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if status["mode"] != "demo" || status["configured"] != false {
		t.Fatalf("unexpected status %+v", status)
	}
}
