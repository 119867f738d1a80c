package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/skills-catalog-go/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Addr = ":0"

	s, err := NewServer(cfg, zap.NewNop(), viewFixture(), nil)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.httpSrv.Handler.ServeHTTP(rec, req)
	return rec
}

func TestCatalogPageRenders(t *testing.T) {
	rec := get(t, testServer(t), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Code Review Helper") {
		t.Fatalf("expected skill card in page")
	}
	if !strings.Contains(body, "Development") {
		t.Fatalf("expected translated category header under default locale")
	}
}

func TestCatalogPageLocaleToggle(t *testing.T) {
	rec := get(t, testServer(t), "/?lang=zh")

	body := rec.Body.String()
	if !strings.Contains(body, "代码审查助手") {
		t.Fatalf("expected zh skill name")
	}
	if !strings.Contains(body, "未分类") {
		t.Fatalf("expected zh uncategorized bucket")
	}

	cookieSet := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "lang" && c.Value == "zh" {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Fatalf("expected lang cookie to persist the toggle")
	}
}

func TestCatalogPageAppliesFilters(t *testing.T) {
	rec := get(t, testServer(t), "/?platform=desktop")

	body := rec.Body.String()
	if !strings.Contains(body, "Code Review Helper") {
		t.Fatalf("expected desktop skill retained")
	}
	if strings.Contains(body, "Meeting Notes") {
		t.Fatalf("expected non-desktop skill excluded")
	}
}

func TestAPISkillsFiltersAndCounts(t *testing.T) {
	rec := get(t, testServer(t), "/api/skills?platform=desktop")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Count  int               `json:"count"`
		Skills []json.RawMessage `json:"skills"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Count != 1 || len(payload.Skills) != 1 {
		t.Fatalf("expected a single desktop skill, got count=%d len=%d", payload.Count, len(payload.Skills))
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, testServer(t), "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response: %d %q", rec.Code, rec.Body.String())
	}
}
