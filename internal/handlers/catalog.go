package handlers

import (
	"net/http"

	"github.com/lpmitleo124/bestellapp/internal/catalog"
	"github.com/lpmitleo124/bestellapp/internal/httpx"
	"github.com/lpmitleo124/bestellapp/internal/sizes"
)

// CatalogHandler exposes the article set the order form is built from.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

type articleView struct {
	Name  string   `json:"name"`
	Rule  string   `json:"rule"`
	Sizes []string `json:"sizes"`
}

// List: GET /catalog
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	articles := h.Catalog.Articles()
	out := make([]articleView, 0, len(articles))
	for _, a := range articles {
		out = append(out, articleView{
			Name:  a.Name,
			Rule:  string(a.Rule.Kind),
			Sizes: a.AllowedSizes(),
		})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"articles": out,
		"colors":   h.Catalog.Colors(),
		"sizes":    sizes.Vocabulary,
	})
}
