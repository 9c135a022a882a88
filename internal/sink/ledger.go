package sink

import (
	"context"
	"encoding/csv"
	"os"
	"sync"

	"github.com/lpmitleo124/bestellapp/internal/export"
)

// Ledger appends order rows to the local CSV fallback file. The fixed header
// is written once when the file is first created; existing rows are never
// touched.
type Ledger struct {
	mu   sync.Mutex
	path string
}

func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

func (l *Ledger) Name() string { return "ledger" }

func (l *Ledger) AppendRows(ctx context.Context, rows []export.Row) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return Unavailable(err)
	}
	_, statErr := os.Stat(l.path)
	needHeader := os.IsNotExist(statErr)
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Unavailable(err)
	}
	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(export.Header()); err != nil {
			f.Close()
			return Unavailable(err)
		}
	}
	for _, r := range rows {
		if err := w.Write(r.Record()); err != nil {
			f.Close()
			return Unavailable(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return Unavailable(err)
	}
	if err := f.Close(); err != nil {
		return Unavailable(err)
	}
	return nil
}
