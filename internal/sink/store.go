package sink

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lpmitleo124/bestellapp/internal/export"
	"github.com/lpmitleo124/bestellapp/internal/models"
)

// Store appends order rows to the shared database table, the stand-in for
// the club's shared order sheet.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Name() string { return "store" }

// AppendRows writes all rows in one transaction so a partial batch never
// lands in the store.
func (s *Store) AppendRows(ctx context.Context, rows []export.Row) error {
	records := make([]models.Order, 0, len(rows))
	for _, r := range rows {
		rec, err := toOrder(r)
		if err != nil {
			return Unavailable(err)
		}
		records = append(records, rec)
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
	if err != nil {
		return Unavailable(err)
	}
	return nil
}

func toOrder(r export.Row) (models.Order, error) {
	price, err := decimal.NewFromString(r.Einzelpreis)
	if err != nil {
		return models.Order{}, fmt.Errorf("bad unit price %q: %w", r.Einzelpreis, err)
	}
	total, err := decimal.NewFromString(r.Summe)
	if err != nil {
		return models.Order{}, fmt.Errorf("bad line total %q: %w", r.Summe, err)
	}
	return models.Order{
		Timestamp:   r.Timestamp,
		Name:        r.Name,
		Team:        r.Team,
		Nummer:      r.Nummer,
		Artikel:     r.Artikel,
		Groesse:     r.Groesse,
		Farbe:       r.Farbe,
		Details:     r.Details,
		Menge:       r.Menge,
		Einzelpreis: price,
		Summe:       total,
	}, nil
}
