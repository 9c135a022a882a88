package sink

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lpmitleo124/bestellapp/internal/cart"
	"github.com/lpmitleo124/bestellapp/internal/export"
)

func ledgerRows(t *testing.T, n int) []export.Row {
	t.Helper()
	lines := make([]cart.Line, 0, n)
	for i := 0; i < n; i++ {
		price := decimal.NewFromInt(35)
		lines = append(lines, cart.Line{
			Customer:    cart.Customer{Name: "Alex", Team: "U18"},
			Artikel:     "Polo",
			Groesse:     "M",
			Farbe:       "Schwarz",
			Menge:       1,
			Einzelpreis: price,
			Summe:       price,
		})
	}
	return export.Rows(lines, time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
}

func readLedger(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse ledger: %v", err)
	}
	return recs
}

func TestLedgerHeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders_local.csv")
	l := NewLedger(path)
	ctx := context.Background()

	if err := l.AppendRows(ctx, ledgerRows(t, 2)); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := l.AppendRows(ctx, ledgerRows(t, 1)); err != nil {
		t.Fatalf("second append: %v", err)
	}

	recs := readLedger(t, path)
	if len(recs) != 4 {
		t.Fatalf("expected header + 3 rows, got %d records", len(recs))
	}
	if recs[0][0] != "Timestamp" || recs[0][5] != "Größe" {
		t.Fatalf("unexpected header: %v", recs[0])
	}
	for _, rec := range recs[1:] {
		if rec[0] == "Timestamp" {
			t.Fatal("header written more than once")
		}
	}
	if recs[1][9] != "35.00" || recs[1][10] != "35.00" {
		t.Fatalf("amounts not 2-decimal formatted: %v", recs[1])
	}
}

func TestLedgerUnavailable(t *testing.T) {
	// a directory in place of the file makes the open fail
	dir := t.TempDir()
	l := NewLedger(dir)
	err := l.AppendRows(context.Background(), ledgerRows(t, 1))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestScrub(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"dial failed: host=db password=hunter2 dbname=orders", "dial failed: host=db password=*** dbname=orders"},
		{"connect postgres://bob:hunter2@db:5432/orders failed", "connect postgres://***@db:5432/orders failed"},
		{"no such file or directory", "no such file or directory"},
	}
	for _, c := range cases {
		if got := Scrub(c.in); got != c.want {
			t.Errorf("Scrub(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
