package sites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func serveRouter(repo Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(repo).RegisterRoutes(router)
	return router
}

func TestServeReturnsStoredHTMLByteForByte(t *testing.T) {
	repo := NewMemoryRepo()
	// Odd spacing and casing must survive untouched.
	stored := "<!DOCTYPE html>\n<html><body><h1>Jane   Smith</h1>&amp;</body></html>\n"
	_ = repo.Upsert(context.Background(), Site{Domain: "jane.me", HTML: stored, PublishedAt: time.Now()})

	router := serveRouter(repo)
	req := httptest.NewRequest(http.MethodGet, "/sites/jane.me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != stored {
		t.Fatalf("body must match stored artifact exactly")
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("got content type %q", ct)
	}
}

func TestServeDomainLookupIsCaseInsensitive(t *testing.T) {
	repo := NewMemoryRepo()
	_ = repo.Upsert(context.Background(), Site{Domain: "jane.me", HTML: "<html></html>"})

	router := serveRouter(repo)
	req := httptest.NewRequest(http.MethodGet, "/sites/JANE.ME", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestServeUnknownDomainGetsDistinct404Page(t *testing.T) {
	router := serveRouter(NewMemoryRepo())
	req := httptest.NewRequest(http.MethodGet, "/sites/nobody.me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Website Not Found") {
		t.Fatalf("missing not-found page body: %s", resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("not-found page must be HTML, got %q", ct)
	}
}
