package publish_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/bootstrap"
	"resume-builder-backend/internal/registrar"
	"resume-builder-backend/internal/shared/config"
)

type stubRegistrar struct {
	available bool
}

func (s stubRegistrar) CheckAvailability(ctx context.Context, domain string) (registrar.Availability, error) {
	return registrar.Availability{Domain: domain, Available: s.available, Price: 9.99}, nil
}

func (s stubRegistrar) Register(ctx context.Context, domain string) error {
	return nil
}

func buildApp(t *testing.T, available bool) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	app.PublishService.Registrar = stubRegistrar{available: available}
	return app
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createResume(t *testing.T, router *gin.Engine) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/v1/resumes", map[string]string{"title": "Test"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create resume: expected 201, got %d", resp.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return created.ID
}

func TestCheckDomainEndpoint(t *testing.T) {
	app := buildApp(t, true)

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/check-domain", map[string]string{
		"domainName": "Jane Smith",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Domain    string  `json:"domain"`
		Available bool    `json:"available"`
		Price     float64 `json:"price"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Domain != "janesmith.me" || !out.Available {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestPublishEndToEndServesSite(t *testing.T) {
	app := buildApp(t, true)
	resumeID := createResume(t, app.Router)

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/publish", map[string]string{
		"resumeId":   resumeID,
		"domainName": "jane",
		"extension":  ".me",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Success bool   `json:"success"`
		Domain  string `json:"domain"`
		URL     string `json:"websiteUrl"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode publish response: %v", err)
	}
	if !out.Success || out.Domain != "jane.me" || out.URL != "https://jane.me" {
		t.Fatalf("unexpected publish response: %+v", out)
	}

	// the published site is world-readable, no identity headers needed
	req := httptest.NewRequest(http.MethodGet, "/sites/jane.me", nil)
	siteResp := httptest.NewRecorder()
	app.Router.ServeHTTP(siteResp, req)
	if siteResp.Code != http.StatusOK {
		t.Fatalf("site: expected 200, got %d", siteResp.Code)
	}
	if !strings.Contains(siteResp.Body.String(), "<!DOCTYPE html>") {
		t.Fatalf("site body is not a standalone document")
	}
}

func TestPublishUnavailableDomainConflicts(t *testing.T) {
	app := buildApp(t, false)
	resumeID := createResume(t, app.Router)

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/publish", map[string]string{
		"resumeId":   resumeID,
		"domainName": "jane",
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	_ = json.Unmarshal(resp.Body.Bytes(), &errResp)
	if errResp.Error.Code != "domain_unavailable" {
		t.Fatalf("got code %q", errResp.Error.Code)
	}
}

func TestPublishSecondAttemptConflicts(t *testing.T) {
	app := buildApp(t, true)
	resumeID := createResume(t, app.Router)

	payload := map[string]string{"resumeId": resumeID, "domainName": "jane"}
	if resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/publish", payload); resp.Code != http.StatusOK {
		t.Fatalf("first publish: expected 200, got %d", resp.Code)
	}
	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/publish", payload)
	if resp.Code != http.StatusConflict {
		t.Fatalf("second publish: expected 409, got %d", resp.Code)
	}
}

func TestPublishValidation(t *testing.T) {
	app := buildApp(t, true)

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/publish", map[string]string{
		"domainName": "jane",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing resumeId: expected 400, got %d", resp.Code)
	}

	resumeID := createResume(t, app.Router)
	resp = doJSON(t, app.Router, http.MethodPost, "/api/v1/publish", map[string]string{
		"resumeId":   resumeID,
		"domainName": "!!!",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("invalid domain: expected 400, got %d", resp.Code)
	}

	resp = doJSON(t, app.Router, http.MethodPost, "/api/v1/publish", map[string]string{
		"resumeId":   "missing",
		"domainName": "jane",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown resume: expected 404, got %d", resp.Code)
	}
}
