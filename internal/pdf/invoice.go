package pdf

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/lpmitleo124/bestellapp/internal/export"
)

// Render produces the invoice PDF from the document model. Layout is the
// fixed template: title, date/customer/team block, article table, total row,
// payment-instructions footer.
func Render(inv export.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(12, inv.Title, props.Text{Size: 16, Style: fontstyle.Bold}))
	m.AddRow(6, text.NewCol(12, "Datum: "+inv.Datum, props.Text{Size: 10}))
	m.AddRow(6, text.NewCol(12, "Kunde: "+inv.Kunde, props.Text{Size: 10}))
	m.AddRow(6, text.NewCol(12, "Team: "+inv.Team, props.Text{Size: 10}))
	m.AddRow(6, col.New(12))

	header := props.Text{Size: 10, Style: fontstyle.Bold}
	headerRight := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	m.AddRow(8,
		text.NewCol(4, "Artikel", header),
		text.NewCol(1, "Größe", header),
		text.NewCol(2, "Farbe", header),
		text.NewCol(1, "Menge", headerRight),
		text.NewCol(2, "Einzelpreis (€)", headerRight),
		text.NewCol(2, "Summe (€)", headerRight),
	)
	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	for _, l := range inv.Lines {
		m.AddRow(6,
			text.NewCol(4, l.Artikel, cell),
			text.NewCol(1, l.Groesse, cell),
			text.NewCol(2, l.Farbe, cell),
			text.NewCol(1, strconv.Itoa(l.Menge), cellRight),
			text.NewCol(2, l.Einzelpreis, cellRight),
			text.NewCol(2, l.Summe, cellRight),
		)
	}
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Gesamt", headerRight),
		text.NewCol(2, inv.Gesamt, headerRight),
	)
	m.AddRow(6, col.New(12))
	m.AddRow(10, text.NewCol(12, inv.Footer, props.Text{Size: 10}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
