package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"littlelemon/internal/events"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		pinger stubPinger
		use    bool
		status int
		want   string
	}{
		{name: "memory", status: http.StatusOK, want: "memory"},
		{name: "postgres up", pinger: stubPinger{}, use: true, status: http.StatusOK, want: "postgres"},
		{name: "postgres down", pinger: stubPinger{err: errors.New("refused")}, use: true, status: http.StatusServiceUnavailable, want: "unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			if tc.use {
				router.GET("/readyz", readyHandler(tc.pinger))
			} else {
				router.GET("/readyz", readyHandler(nil))
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			var body map[string]string
			decode(t, rec, &body)
			if body["storage"] != tc.want && body["status"] != tc.want {
				t.Fatalf("unexpected body %v", body)
			}
		})
	}
}

func TestBuildRouterRequiresDeps(t *testing.T) {
	deps := testDeps(t, &events.Recorder{})
	deps.CartSvc = nil
	if _, err := buildRouter(zap.NewNop(), nil, deps, nil); err == nil || err.Error() != "cart service required" {
		t.Fatalf("expected missing cart service error, got %v", err)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodOptions, "/api/bookings", "", map[string]string{
		"Origin":                         "http://localhost:3000",
		"Access-Control-Request-Method":  "POST",
		"Access-Control-Request-Headers": "Content-Type, Idempotency-Key",
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"":             "",
	}
	for header, want := range cases {
		got, ok := bearerToken(header)
		if got != want || ok != (want != "") {
			t.Errorf("bearerToken(%q) = %q, %v", header, got, ok)
		}
	}
}

func TestMenuRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/menu", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list struct {
		Items []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"items"`
		Total int `json:"total"`
	}
	decode(t, rec, &list)
	if list.Total != 3 || list.Items[0].ID != "greek-salad" {
		t.Fatalf("unexpected menu %+v", list)
	}

	rec = env.do(http.MethodGet, "/api/menu/bruschetta", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = env.do(http.MethodGet, "/api/menu/pizza", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
