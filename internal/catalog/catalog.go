package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lpmitleo124/bestellapp/internal/sizes"
)

// RuleKind tags the pricing-rule variant of an article.
type RuleKind string

const (
	// FlatTwoTier prices every size at Standard except the plus sizes
	// (3XL/4XL/5XL), which get PlusSize.
	FlatTwoTier RuleKind = "flat_two_tier"
	// PerSizeMap prices only the sizes listed in BySize; anything else is
	// not purchasable.
	PerSizeMap RuleKind = "per_size_map"
)

// PricingRule is the tagged union of the two catalog pricing shapes.
type PricingRule struct {
	Kind     RuleKind
	Standard decimal.Decimal
	PlusSize decimal.Decimal
	BySize   map[string]decimal.Decimal // keys are normalized sizes
}

// Article is an immutable catalog entry: a single item or a package/bundle.
type Article struct {
	Name  string
	Rule  PricingRule
	Sizes []string // explicit allowed sizes (normalized); empty means unrestricted
}

// AllowedSizes returns the article's declared size list, falling back to the
// global vocabulary. Used for display; validation only applies the explicit
// list (see Allows).
func (a Article) AllowedSizes() []string {
	if len(a.Sizes) > 0 {
		return a.Sizes
	}
	return sizes.Vocabulary
}

// Allows reports whether a normalized size passes the article's declared
// size list. Articles without an explicit list accept any token.
func (a Article) Allows(normalized string) bool {
	if len(a.Sizes) == 0 {
		return true
	}
	for _, s := range a.Sizes {
		if s == normalized {
			return true
		}
	}
	return false
}

// Catalog holds the article set and color palette, fixed at startup.
type Catalog struct {
	byName map[string]Article
	order  []string
	colors []string
}

// New builds a catalog from an ordered article list. Article sizes and
// per-size price keys are normalized so lookups always go through canonical
// tokens. Duplicate names are an error: the catalog must be unambiguous.
func New(articles []Article, colors []string) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Article, len(articles)), colors: colors}
	for _, a := range articles {
		if a.Name == "" {
			return nil, fmt.Errorf("catalog: article with empty name")
		}
		if _, dup := c.byName[a.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate article %q", a.Name)
		}
		if len(a.Sizes) > 0 {
			normalized := make([]string, len(a.Sizes))
			for i, s := range a.Sizes {
				normalized[i] = sizes.Normalize(s)
			}
			a.Sizes = normalized
		}
		if a.Rule.Kind == PerSizeMap {
			normalized := make(map[string]decimal.Decimal, len(a.Rule.BySize))
			for s, p := range a.Rule.BySize {
				normalized[sizes.Normalize(s)] = p
			}
			a.Rule.BySize = normalized
		}
		c.byName[a.Name] = a
		c.order = append(c.order, a.Name)
	}
	return c, nil
}

// Article looks up an article by exact name.
func (c *Catalog) Article(name string) (Article, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// Articles returns the articles in catalog order.
func (c *Catalog) Articles() []Article {
	out := make([]Article, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Colors returns the color palette offered with each article.
func (c *Catalog) Colors() []string {
	return c.colors
}

// FlatRule is a convenience constructor for the two-tier shape.
func FlatRule(standard, plusSize int64) PricingRule {
	return PricingRule{
		Kind:     FlatTwoTier,
		Standard: decimal.NewFromInt(standard),
		PlusSize: decimal.NewFromInt(plusSize),
	}
}

// Default returns the built-in Münster Phoenix teamwear catalog: the
// historical price table, all flat two-tier.
func Default() *Catalog {
	articles := []Article{
		{Name: "Zip Jacke NMS", Rule: FlatRule(65, 70)},
		{Name: "Kapuzenpulli NMS", Rule: FlatRule(50, 55)},
		{Name: "Kurz Hose Mesh 2k5", Rule: FlatRule(28, 30)},
		{Name: "Jogging Hose NMS", Rule: FlatRule(45, 50)},
		{Name: "T-Shirt", Rule: FlatRule(20, 25)},
		{Name: "Kapuzenpulli Gildan", Rule: FlatRule(40, 45)},
		{Name: "Polo", Rule: FlatRule(35, 38)},
		{Name: "Tank Top", Rule: FlatRule(25, 28)},
		{Name: "Langarm Shirt", Rule: FlatRule(35, 38)},
		{Name: "Paket 1", Rule: FlatRule(45, 50)},
		{Name: "Paket 2", Rule: FlatRule(80, 90)},
		{Name: "Paket 3", Rule: FlatRule(75, 80)},
		{Name: "Paket 4", Rule: FlatRule(100, 110)},
		{Name: "Paket 5", Rule: FlatRule(110, 120)},
		{Name: "Paket 6", Rule: FlatRule(125, 135)},
		{Name: "Paket 7", Rule: FlatRule(150, 165)},
		{Name: "Paket 8", Rule: FlatRule(155, 170)},
	}
	colors := []string{"Schwarz", "Weiß", "Orange", "Rot"}
	c, err := New(articles, colors)
	if err != nil {
		// The built-in table is static; a failure here is a programming error.
		panic(err)
	}
	return c
}
