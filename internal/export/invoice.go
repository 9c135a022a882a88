package export

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lpmitleo124/bestellapp/internal/cart"
)

// InvoiceLine is one body row of the invoice table.
type InvoiceLine struct {
	Artikel     string
	Groesse     string
	Farbe       string
	Menge       int
	Einzelpreis string
	Summe       string
}

// Invoice is the document model handed to the PDF renderer. It is the only
// interface between the cart and document rendering.
type Invoice struct {
	Title  string
	Datum  string
	Kunde  string
	Team   string
	Lines  []InvoiceLine
	Gesamt string
	Footer string
}

const (
	invoiceTitle  = "Rechnung - Münster Phoenix"
	invoiceFooter = "Vielen Dank für Ihre Bestellung! Bitte überweisen Sie den Gesamtbetrag unter Angabe von Name und Team an das Vereinskonto."
)

// InvoiceModel builds the invoice document for a cart snapshot. Package
// details are folded into the article label; amounts are fixed to two
// decimals.
func InvoiceModel(lines []cart.Line, kunde, team string, now time.Time) Invoice {
	inv := Invoice{
		Title:  invoiceTitle,
		Datum:  now.Format("2006-01-02"),
		Kunde:  kunde,
		Team:   team,
		Footer: invoiceFooter,
	}
	total := decimal.Zero
	for _, l := range lines {
		artikel := l.Artikel
		if l.Details != "" {
			artikel += " (" + l.Details + ")"
		}
		inv.Lines = append(inv.Lines, InvoiceLine{
			Artikel:     artikel,
			Groesse:     l.Groesse,
			Farbe:       l.Farbe,
			Menge:       l.Menge,
			Einzelpreis: l.Einzelpreis.StringFixed(2),
			Summe:       l.Summe.StringFixed(2),
		})
		total = total.Add(l.Summe)
	}
	inv.Gesamt = total.StringFixed(2)
	return inv
}
