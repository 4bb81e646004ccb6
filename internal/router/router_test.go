package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/outreach-dashboard/docs"
	"github.com/onegreenvn/outreach-dashboard/internal/config"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/onegreenvn/outreach-dashboard/internal/services"
	"github.com/onegreenvn/outreach-dashboard/internal/services/excel"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubCaller struct{}

func (stubCaller) MakeCall(ctx context.Context, toNumber string) models.CallResult {
	return models.CallResult{Number: toNumber, Status: models.CallStatusCalled, Details: "UUID: x"}
}

type stubScraper struct{}

func (stubScraper) Process(ctx context.Context, urls []string) models.ScrapeOutcome {
	return models.ScrapeOutcome{Payload: []byte(`{"count":0,"profiles":[]}`)}
}

type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, title, details string) models.GeneratedArticle {
	return models.GeneratedArticle{Title: title, Content: details}
}

func newTestRouter(t *testing.T, dashboard config.DashboardConfig) *gin.Engine {
	t.Helper()
	hub := services.NewSSEHub()
	r, err := SetupRouter(&config.Config{Dashboard: dashboard}, Dependencies{
		Calls:      stubCaller{},
		Scraper:    stubScraper{},
		Blogs:      stubGenerator{},
		Exporter:   excel.NewExcelService(t.TempDir()),
		Activity:   services.NewActivityService(hub),
		SSEHub:     hub,
		Components: map[string]bool{"database": false},
	})
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_OpenByDefault(t *testing.T) {
	r := newTestRouter(t, config.DashboardConfig{})

	for _, path := range []string{"/", "/home", "/scrapper", "/blogs", "/up", "/api/v1/health"} {
		if w := serve(r, httptest.NewRequest(http.MethodGet, path, nil)); w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/make_call", strings.NewReader(url.Values{"phone_numbers": {"1, 2"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if w := serve(r, req); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("POST /make_call: expected 422, got %d", w.Code)
	}

	// activity listing needs a database
	if w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/activity", nil)); w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/v1/activity: expected 503, got %d", w.Code)
	}
}

func TestRouter_Protected(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	r := newTestRouter(t, config.DashboardConfig{User: "op", PasswordHash: string(hash), APIKey: "k"})

	if w := serve(r, httptest.NewRequest(http.MethodGet, "/home", nil)); w.Code != http.StatusUnauthorized {
		t.Errorf("expected pages to require basic auth, got %d", w.Code)
	}
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.SetBasicAuth("op", "pw")
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Errorf("expected 200 with credentials, got %d", w.Code)
	}

	body := `{"phone_numbers":"1"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/calls", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if w := serve(r, req); w.Code != http.StatusUnauthorized {
		t.Errorf("expected API to require a key, got %d", w.Code)
	}
	req = httptest.NewRequest(http.MethodPost, "/api/v1/calls", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey k")
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Errorf("expected 200 with key, got %d", w.Code)
	}

	for _, path := range []string{"/up", "/api/v1/health"} {
		if w := serve(r, httptest.NewRequest(http.MethodGet, path, nil)); w.Code != http.StatusOK {
			t.Errorf("GET %s should stay public, got %d", path, w.Code)
		}
	}
}

func TestRouter_APIRoutesMatchSwaggerDoc(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}

	registered := map[string]bool{}
	for _, route := range newTestRouter(t, config.DashboardConfig{}).Routes() {
		if !strings.HasPrefix(route.Path, "/api/v1/") {
			continue
		}
		path := route.Path
		if i := strings.Index(path, "/:"); i >= 0 {
			path = path[:i] + "/{" + path[i+2:] + "}"
		}
		method := strings.ToLower(route.Method)
		registered[method+" "+path] = true

		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("route %s %s is not documented", route.Method, path)
		}
	}

	for path, methods := range doc.Paths {
		for method := range methods {
			if !registered[method+" "+path] {
				t.Errorf("documented %s %s has no route", method, path)
			}
		}
	}
}
