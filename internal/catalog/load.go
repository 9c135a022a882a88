package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// File format for catalog overrides. Each article is either flat two-tier
// ("standard" + "plus_size") or per-size ("prices"); "sizes" optionally
// restricts the allowed sizes.
//
//	{
//	  "colors": ["Schwarz", "Weiß"],
//	  "articles": [
//	    {"name": "Polo", "standard": 35, "plus_size": 38},
//	    {"name": "T-Shirt", "prices": {"S": 20, "M": 20, "3XL": 25}, "sizes": ["S", "M", "3XL"]}
//	  ]
//	}
type fileCatalog struct {
	Colors   []string      `json:"colors"`
	Articles []fileArticle `json:"articles"`
}

type fileArticle struct {
	Name     string                 `json:"name"`
	Standard *json.Number           `json:"standard"`
	PlusSize *json.Number           `json:"plus_size"`
	Prices   map[string]json.Number `json:"prices"`
	Sizes    []string               `json:"sizes"`
}

// LoadFile reads a catalog definition from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var fc fileCatalog
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(fc.Articles) == 0 {
		return nil, fmt.Errorf("catalog %s defines no articles", path)
	}
	articles := make([]Article, 0, len(fc.Articles))
	for _, fa := range fc.Articles {
		a, err := fa.toArticle()
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	colors := fc.Colors
	if len(colors) == 0 {
		colors = Default().Colors()
	}
	return New(articles, colors)
}

func (fa fileArticle) toArticle() (Article, error) {
	a := Article{Name: fa.Name, Sizes: fa.Sizes}
	switch {
	case len(fa.Prices) > 0:
		bySize := make(map[string]decimal.Decimal, len(fa.Prices))
		for size, num := range fa.Prices {
			p, err := parsePrice(num)
			if err != nil {
				return Article{}, fmt.Errorf("article %q size %q: %w", fa.Name, size, err)
			}
			bySize[size] = p
		}
		a.Rule = PricingRule{Kind: PerSizeMap, BySize: bySize}
	case fa.Standard != nil && fa.PlusSize != nil:
		standard, err := parsePrice(*fa.Standard)
		if err != nil {
			return Article{}, fmt.Errorf("article %q standard price: %w", fa.Name, err)
		}
		plus, err := parsePrice(*fa.PlusSize)
		if err != nil {
			return Article{}, fmt.Errorf("article %q plus-size price: %w", fa.Name, err)
		}
		a.Rule = PricingRule{Kind: FlatTwoTier, Standard: standard, PlusSize: plus}
	default:
		return Article{}, fmt.Errorf("article %q needs either prices or standard+plus_size", fa.Name)
	}
	return a, nil
}

func parsePrice(num json.Number) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(num.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q", num.String())
	}
	if p.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %s", p)
	}
	return p, nil
}
