package cart

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lpmitleo124/bestellapp/internal/catalog"
	"github.com/lpmitleo124/bestellapp/internal/pricing"
	"github.com/lpmitleo124/bestellapp/internal/sizes"
)

var (
	// ErrInvalidQuantity rejects adds with quantity < 1.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrSizeNotAllowed rejects sizes outside an article's declared size
	// list. Articles without a list accept any token.
	ErrSizeNotAllowed = errors.New("size not allowed")
	// ErrIndexOutOfRange rejects removals with a bad line index.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Customer is the person a line is ordered for. It doubles as the
// session-scoped prefill hint remembered after each successful add.
type Customer struct {
	Name   string `json:"name"`
	Team   string `json:"team"`
	Nummer string `json:"nummer"`
}

// Line is one cart position. Immutable once created: the unit price is
// captured by value at add time, so later catalog changes never alter it.
type Line struct {
	Customer    Customer        `json:"customer"`
	Artikel     string          `json:"artikel"`
	Groesse     string          `json:"groesse"` // normalized
	Farbe       string          `json:"farbe"`
	Menge       int             `json:"menge"`
	Einzelpreis decimal.Decimal `json:"einzelpreis"`
	Summe       decimal.Decimal `json:"summe"`
	Details     string          `json:"details"` // free-text package details / extra sizes
}

// AddRequest carries the raw user input for one add-to-cart action.
type AddRequest struct {
	Name    string
	Team    string
	Nummer  string
	Artikel string
	Groesse string
	Farbe   string
	Menge   int
	Details string
}

// Cart is the per-session order under construction: an ordered list of
// lines plus the remembered customer. All methods are safe to call from the
// host's request goroutines; each operation is indivisible.
type Cart struct {
	mu         sync.Mutex
	cat        *catalog.Catalog
	resolver   *pricing.Resolver
	lines      []Line
	remembered Customer
}

func New(cat *catalog.Catalog, resolver *pricing.Resolver) *Cart {
	return &Cart{cat: cat, resolver: resolver}
}

// AddLine validates and prices one position and appends it. On any error the
// cart is left unchanged. Identical article+size lines are kept as separate
// positions, never merged.
func (c *Cart) AddLine(req AddRequest) (Line, error) {
	if req.Menge < 1 {
		return Line{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, req.Menge)
	}
	size := sizes.Normalize(req.Groesse)
	article, ok := c.cat.Article(req.Artikel)
	if !ok {
		return Line{}, fmt.Errorf("%w: %q", pricing.ErrUnknownArticle, req.Artikel)
	}
	if !article.Allows(size) {
		return Line{}, fmt.Errorf("%w: %q does not come in %q", ErrSizeNotAllowed, req.Artikel, size)
	}
	price, err := c.resolver.UnitPrice(req.Artikel, size)
	if err != nil {
		return Line{}, err
	}
	line := Line{
		Customer: Customer{
			Name:   strings.TrimSpace(req.Name),
			Team:   strings.TrimSpace(req.Team),
			Nummer: strings.TrimSpace(req.Nummer),
		},
		Artikel:     req.Artikel,
		Groesse:     size,
		Farbe:       strings.TrimSpace(req.Farbe),
		Menge:       req.Menge,
		Einzelpreis: price,
		Summe:       price.Mul(decimal.NewFromInt(int64(req.Menge))),
		Details:     strings.TrimSpace(req.Details),
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
	c.remembered = line.Customer
	return line, nil
}

// RemoveLine deletes the line at index, preserving the order of the rest.
func (c *Cart) RemoveLine(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.lines) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.lines))
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Clear empties the line list and the remembered customer.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.remembered = Customer{}
}

// Lines returns a snapshot of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the current number of lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// GrandTotal sums the line totals; zero for an empty cart.
func (c *Cart) GrandTotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Summe)
	}
	return total
}

// Remembered returns the prefill hint from the last successful add.
func (c *Cart) Remembered() Customer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remembered
}
