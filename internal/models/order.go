package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one persisted order row in the shared store. Rows are append-only:
// nothing in this system updates or deletes them after creation.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Timestamp   string          `gorm:"not null;index" json:"timestamp"` // submission time as recorded on the row
	Name        string          `json:"name"`
	Team        string          `json:"team"`
	Nummer      string          `json:"nummer"`
	Artikel     string          `gorm:"not null" json:"artikel"`
	Groesse     string          `json:"groesse"`
	Farbe       string          `json:"farbe"`
	Details     string          `json:"details"`
	Menge       int             `gorm:"not null" json:"menge"`
	Einzelpreis decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"einzelpreis"`
	Summe       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"summe"`
	CreatedAt   time.Time       `json:"created_at"`
}
