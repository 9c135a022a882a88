package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lpmitleo124/bestellapp/internal/catalog"
	"github.com/lpmitleo124/bestellapp/internal/sizes"
)

var (
	// ErrUnknownArticle is returned for article names not in the catalog.
	ErrUnknownArticle = errors.New("unknown article")
	// ErrSizeNotPriced is returned when a per-size-map article has no price
	// for the requested size. Flat two-tier articles never return it.
	ErrSizeNotPriced = errors.New("size not priced")
)

// Resolver answers unit-price lookups against an immutable catalog.
type Resolver struct {
	cat *catalog.Catalog
}

func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// UnitPrice resolves the unit price for an article and a normalized size.
// Flat two-tier articles price the plus sizes at the higher tier and every
// other token at the standard tier; per-size-map articles require an exact
// entry and never fall back.
func (r *Resolver) UnitPrice(article, normalizedSize string) (decimal.Decimal, error) {
	a, ok := r.cat.Article(article)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownArticle, article)
	}
	switch a.Rule.Kind {
	case catalog.PerSizeMap:
		p, ok := a.Rule.BySize[normalizedSize]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %q has no entry for %q", ErrSizeNotPriced, article, normalizedSize)
		}
		return p, nil
	default:
		if sizes.IsPlusSize(normalizedSize) {
			return a.Rule.PlusSize, nil
		}
		return a.Rule.Standard, nil
	}
}
