package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lpmitleo124/bestellapp/internal/cart"
	"github.com/lpmitleo124/bestellapp/internal/catalog"
	"github.com/lpmitleo124/bestellapp/internal/models"
	"github.com/lpmitleo124/bestellapp/internal/pricing"
	"github.com/lpmitleo124/bestellapp/internal/sink"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cat := catalog.Default()
	store := cart.NewStore(cat, pricing.NewResolver(cat))
	sinks := map[string]sink.Sink{"store": sink.NewStore(db)}
	return New(db, cat, store, sinks, zap.NewNop())
}

func TestHealthEndpoints(t *testing.T) {
	h := testRouter(t)
	for _, path := range []string{"/health", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestCatalogEndpoint(t *testing.T) {
	h := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Articles []struct {
			Name string `json:"name"`
			Rule string `json:"rule"`
		} `json:"articles"`
		Colors []string `json:"colors"`
		Sizes  []string `json:"sizes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Articles) != 17 || len(resp.Colors) != 4 || len(resp.Sizes) != 9 {
		t.Fatalf("unexpected catalog: %d articles, %d colors, %d sizes", len(resp.Articles), len(resp.Colors), len(resp.Sizes))
	}
	if resp.Articles[0].Name != "Zip Jacke NMS" || resp.Articles[0].Rule != "flat_two_tier" {
		t.Fatalf("unexpected first article: %+v", resp.Articles[0])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := testRouter(t)
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/catalog"},
		{http.MethodDelete, "/cart"},
		{http.MethodGet, "/cart/submit"},
		{http.MethodPut, "/cart/lines"},
		{http.MethodPost, "/orders"},
	}
	for _, c := range cases {
		req := httptest.NewRequest(c.method, c.path, strings.NewReader(""))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: expected 405, got %d", c.method, c.path, w.Code)
		}
	}
}

func TestCartFlowThroughRouter(t *testing.T) {
	h := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/lines", strings.NewReader(`{"name":"Alex","artikel":"Polo","groesse":"XL","menge":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "bestell_session" {
			session = ck
		}
	}
	if session == nil {
		t.Fatal("no session cookie issued")
	}

	req = httptest.NewRequest(http.MethodPost, "/cart/submit?sink=store", nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/orders", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("orders: expected 200, got %d", w.Code)
	}
	var resp struct {
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 persisted row, got %d", resp.Total)
	}
}
