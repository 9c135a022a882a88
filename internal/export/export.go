package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/lpmitleo124/bestellapp/internal/cart"
)

// timestampLayout matches the historical ledger rows.
const timestampLayout = "2006-01-02 15:04:05"

// Row is the flat append-only representation of one cart line. Numeric
// amounts are pre-formatted to exactly two decimals for ledger compatibility.
type Row struct {
	Timestamp   string
	Name        string
	Team        string
	Nummer      string
	Artikel     string
	Groesse     string
	Farbe       string
	Details     string
	Menge       int
	Einzelpreis string
	Summe       string
}

// Header is the canonical ledger schema. Written once, on first creation of
// a ledger file; every sink uses the same column set.
func Header() []string {
	return []string{"Timestamp", "Name", "Team", "Nummer", "Artikel", "Größe", "Farbe", "Paket-Details", "Menge", "Einzelpreis", "Summe"}
}

// Record renders the row in header column order.
func (r Row) Record() []string {
	return []string{r.Timestamp, r.Name, r.Team, r.Nummer, r.Artikel, r.Groesse, r.Farbe, r.Details, strconv.Itoa(r.Menge), r.Einzelpreis, r.Summe}
}

// Rows flattens cart lines into export rows, all stamped with the same
// submission time.
func Rows(lines []cart.Line, ts time.Time) []Row {
	stamp := ts.Format(timestampLayout)
	out := make([]Row, 0, len(lines))
	for _, l := range lines {
		out = append(out, Row{
			Timestamp:   stamp,
			Name:        l.Customer.Name,
			Team:        l.Customer.Team,
			Nummer:      l.Customer.Nummer,
			Artikel:     l.Artikel,
			Groesse:     l.Groesse,
			Farbe:       l.Farbe,
			Details:     l.Details,
			Menge:       l.Menge,
			Einzelpreis: l.Einzelpreis.StringFixed(2),
			Summe:       l.Summe.StringFixed(2),
		})
	}
	return out
}

// WriteOfferCSV renders the current cart as the downloadable offer table.
// Column order follows the historical offer sheet: article data first, the
// customer columns trailing.
func WriteOfferCSV(w io.Writer, lines []cart.Line) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Artikel", "Größe", "Farbe", "Menge", "Einzelpreis", "Summe", "Spieler", "Team", "Nummer"}); err != nil {
		return err
	}
	for _, l := range lines {
		rec := []string{
			l.Artikel, l.Groesse, l.Farbe, strconv.Itoa(l.Menge),
			l.Einzelpreis.StringFixed(2), l.Summe.StringFixed(2),
			l.Customer.Name, l.Customer.Team, l.Customer.Nummer,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
