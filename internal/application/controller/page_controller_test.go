package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"haru-weather/internal/domain/model"

	"github.com/labstack/echo/v4"
)

func newPageServer() *echo.Echo {
	e := echo.New()
	NewPageController(e.Group("/haru")).InitPageRoutes()
	return e
}

func TestPageFindAll(t *testing.T) {
	e := newPageServer()

	req := httptest.NewRequest(http.MethodGet, "/haru/pages", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got []model.PageMeta
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 pages, got %d", len(got))
	}
	if got[0].Path != "/" || got[0].Title != "HARU WEATHER - 실시간 날씨 정보" {
		t.Errorf("unexpected home entry %+v", got[0])
	}
	if got[4].Name != "Feedback" {
		t.Errorf("expected feedback last, got %+v", got[4])
	}
}

func TestPageFindByPath(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantName  string
		wantTitle string
	}{
		{name: "about", target: "/haru/pages/about", wantName: "About", wantTitle: "프로젝트 소개 - HARU WEATHER"},
		{name: "api docs", target: "/haru/pages/api-docs", wantName: "ApiDocs", wantTitle: "API 문서 - HARU WEATHER"},
		{name: "trailing slash", target: "/haru/pages/usage/", wantName: "Usage", wantTitle: "사용법 - HARU WEATHER"},
	}

	e := newPageServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			var got model.PageMeta
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if got.Name != tt.wantName || got.Title != tt.wantTitle {
				t.Errorf("got %+v, want name %q title %q", got, tt.wantName, tt.wantTitle)
			}
		})
	}
}

func TestPageUnknownPathRedirectsHome(t *testing.T) {
	e := newPageServer()

	req := httptest.NewRequest(http.MethodGet, "/haru/pages/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if location := rec.Header().Get(echo.HeaderLocation); location != "/haru/pages/" {
		t.Errorf("location = %q, want %q", location, "/haru/pages/")
	}
}
