package sink

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lpmitleo124/bestellapp/internal/models"
)

func setupStoreDB(t *testing.T) *gorm.DB {
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

func TestStoreAppendRows(t *testing.T) {
	db := setupStoreDB(t)
	s := NewStore(db)
	if s.Name() != "store" {
		t.Fatalf("name = %q", s.Name())
	}
	rows := ledgerRows(t, 2)
	if err := s.AppendRows(context.Background(), rows); err != nil {
		t.Fatalf("AppendRows: %v", err)
	}
	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 persisted rows, got %d", count)
	}
	var first models.Order
	if err := db.Order("id asc").First(&first).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if first.Artikel != "Polo" || first.Einzelpreis.StringFixed(2) != "35.00" {
		t.Fatalf("unexpected row: %+v", first)
	}
	if first.Timestamp != time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05") {
		t.Fatalf("timestamp = %q", first.Timestamp)
	}
}

func TestStoreAppendRowsBadAmount(t *testing.T) {
	db := setupStoreDB(t)
	s := NewStore(db)
	rows := ledgerRows(t, 1)
	rows[0].Einzelpreis = "not-a-number"
	if err := s.AppendRows(context.Background(), rows); err == nil {
		t.Fatal("expected failure for malformed amount")
	}
	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("failed append must write nothing, got %d rows", count)
	}
}
