package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewAPI_HasCorrectInfo(t *testing.T) {
	api, router := NewAPI(APIConfig{})

	if api == nil || router == nil {
		t.Fatal("NewAPI returned nil")
	}

	info := api.OpenAPI().Info
	if info.Title != Title {
		t.Errorf("API title = %s, want %s", info.Title, Title)
	}
	if info.Version != Version {
		t.Errorf("API version = %s, want %s", info.Version, Version)
	}
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI(APIConfig{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.json", nil))

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("OpenAPI endpoint status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "application/vnd.oai.openapi+json" {
		t.Errorf("OpenAPI content-type = %s, want application/vnd.oai.openapi+json", contentType)
	}
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI(APIConfig{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/docs", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Docs endpoint status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html" {
		t.Errorf("Docs content-type = %s, want text/html", ct)
	}
}

func TestAPI_MetricsMount(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("countrystats_upstream_requests_total 0\n"))
	})

	_, router := NewAPI(APIConfig{MetricsHandler: metrics})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", MetricsPath, nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "countrystats_upstream_requests_total") {
		t.Errorf("metrics endpoint = %d %q", w.Code, w.Body.String())
	}

	_, bare := NewAPI(APIConfig{})
	w = httptest.NewRecorder()
	bare.ServeHTTP(w, httptest.NewRequest("GET", MetricsPath, nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("metrics without handler = %d, want 404", w.Code)
	}
}

func TestAPI_RateLimitApplied(t *testing.T) {
	_, router := NewAPI(APIConfig{RateLimit: 1, RateWindow: time.Minute})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/openapi.json", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 429]", codes)
	}
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPI(APIConfig{RateLimit: 1, RateWindow: time.Minute})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("OPTIONS", "/cities", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", "GET")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("preflight %d missing allow-origin: %v", i, w.Header())
		}
	}
}
