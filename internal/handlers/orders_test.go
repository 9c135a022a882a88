package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lpmitleo124/bestellapp/internal/models"
)

func setupOrdersDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestOrdersList(t *testing.T) {
	db := setupOrdersDB(t)
	for i := 0; i < 3; i++ {
		order := models.Order{
			Timestamp:   "2026-08-31 12:00:00",
			Name:        "Alex",
			Artikel:     "Polo",
			Groesse:     "M",
			Menge:       1,
			Einzelpreis: decimal.NewFromInt(35),
			Summe:       decimal.NewFromInt(35),
		}
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	h := NewOrdersHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/orders?limit=2", nil)
	w := httptest.NewRecorder()
	h.List(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Items []models.Order `json:"items"`
		Total int64          `json:"total"`
		Limit int            `json:"limit"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 3 || len(resp.Items) != 2 || resp.Limit != 2 {
		t.Fatalf("unexpected page: total=%d items=%d limit=%d", resp.Total, len(resp.Items), resp.Limit)
	}
	// newest first
	if resp.Items[0].ID <= resp.Items[1].ID {
		t.Fatalf("expected descending ids, got %d then %d", resp.Items[0].ID, resp.Items[1].ID)
	}
}
