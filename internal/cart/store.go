package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lpmitleo124/bestellapp/internal/catalog"
	"github.com/lpmitleo124/bestellapp/internal/pricing"
)

// Store hands out one cart per session id. Carts are created lazily and live
// for the process lifetime; there is no eviction because a session holds at
// most one small cart.
type Store struct {
	mu       sync.Mutex
	cat      *catalog.Catalog
	resolver *pricing.Resolver
	carts    map[string]*Cart
}

func NewStore(cat *catalog.Catalog, resolver *pricing.Resolver) *Store {
	return &Store{cat: cat, resolver: resolver, carts: make(map[string]*Cart)}
}

// NewSession mints a fresh session id.
func (s *Store) NewSession() string {
	return uuid.NewString()
}

// Get returns the cart for a session, creating an empty one on first use.
func (s *Store) Get(session string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[session]
	if !ok {
		c = New(s.cat, s.resolver)
		s.carts[session] = c
	}
	return c
}
