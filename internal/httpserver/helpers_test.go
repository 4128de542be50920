package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"littlelemon/internal/events"
	"littlelemon/internal/idempotency"
	contactrepo "littlelemon/internal/repository/contact"
	menurepo "littlelemon/internal/repository/menu"
	orderrepo "littlelemon/internal/repository/order"
	"littlelemon/internal/seed"
	bookingsvc "littlelemon/internal/service/booking"
	cartsvc "littlelemon/internal/service/cart"
	checkoutsvc "littlelemon/internal/service/checkout"
	contactsvc "littlelemon/internal/service/contact"
	menusvc "littlelemon/internal/service/menu"
	sessionsvc "littlelemon/internal/service/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type testEnv struct {
	router *gin.Engine
	events *events.Recorder
}

func testDeps(t *testing.T, rec *events.Recorder) Deps {
	t.Helper()
	menuRepo := menurepo.NewMemory()
	if _, err := seed.LoadMenu(context.Background(), menuRepo); err != nil {
		t.Fatalf("load menu: %v", err)
	}
	orders := orderrepo.NewMemory()
	logger := zap.NewNop()
	return Deps{
		MenuSvc:     menusvc.New(menuRepo),
		SessionSvc:  sessionsvc.New(time.Hour),
		CartSvc:     cartsvc.New(menuRepo),
		BookingSvc:  bookingsvc.New(bookingsvc.MockSubmitter{}, idempotency.NewMemory(), rec, logger),
		CheckoutSvc: checkoutsvc.New(orders, rec, logger),
		Orders:      orders,
		ContactSvc:  contactsvc.New(contactrepo.NewMemory(), rec, logger),
	}
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := &events.Recorder{}
	router, err := buildRouter(zap.NewNop(), nil, testDeps(t, rec), []string{"http://localhost:3000"})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return testEnv{router: router, events: rec}
}

func (e testEnv) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// session opens a browsing session and returns the Authorization header for it.
func (e testEnv) session(t *testing.T) map[string]string {
	t.Helper()
	rec := e.do(http.MethodPost, "/api/sessions", "", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: %d %s", rec.Code, rec.Body.String())
	}
	var resp sessionResponse
	decode(t, rec, &resp)
	return map[string]string{"Authorization": "Bearer " + resp.Token}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
}
