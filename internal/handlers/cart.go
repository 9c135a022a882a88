package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lpmitleo124/bestellapp/internal/cart"
	"github.com/lpmitleo124/bestellapp/internal/export"
	"github.com/lpmitleo124/bestellapp/internal/httpx"
	"github.com/lpmitleo124/bestellapp/internal/pdf"
	"github.com/lpmitleo124/bestellapp/internal/pricing"
	"github.com/lpmitleo124/bestellapp/internal/sink"
)

const sessionCookie = "bestell_session"

// CartHandler serves the per-session cart: add/remove/clear, offer and
// invoice downloads, and submission to a persistence sink.
type CartHandler struct {
	Store *cart.Store
	Sinks map[string]sink.Sink
}

func NewCartHandler(store *cart.Store, sinks map[string]sink.Sink) *CartHandler {
	return &CartHandler{Store: store, Sinks: sinks}
}

// session resolves the caller's cart, minting a session cookie on first use.
func (h *CartHandler) session(w http.ResponseWriter, r *http.Request) *cart.Cart {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return h.Store.Get(c.Value)
	}
	id := h.Store.NewSession()
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: id, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	return h.Store.Get(id)
}

type cartView struct {
	Lines      []cart.Line   `json:"lines"`
	Total      string        `json:"total"`
	Remembered cart.Customer `json:"remembered"`
}

func viewOf(c *cart.Cart) cartView {
	lines := c.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartView{Lines: lines, Total: c.GrandTotal().StringFixed(2), Remembered: c.Remembered()}
}

// View: GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, viewOf(h.session(w, r)))
}

// AddLine: POST /cart/lines – JSON or form
func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	type addReq struct {
		Name    string `json:"name"`
		Team    string `json:"team"`
		Nummer  string `json:"nummer"`
		Artikel string `json:"artikel"`
		Groesse string `json:"groesse"`
		Farbe   string `json:"farbe"`
		Menge   int    `json:"menge"`
		Details string `json:"details"`
	}
	var req addReq
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
			return
		}
		req.Name = r.Form.Get("name")
		req.Team = r.Form.Get("team")
		req.Nummer = r.Form.Get("nummer")
		req.Artikel = r.Form.Get("artikel")
		req.Groesse = r.Form.Get("groesse")
		req.Farbe = r.Form.Get("farbe")
		req.Details = r.Form.Get("details")
		if v := r.Form.Get("menge"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				httpx.JSONError(w, http.StatusBadRequest, "invalid_quantity", map[string]string{"menge": v})
				return
			}
			req.Menge = n
		}
	}
	if req.Artikel == "" {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"artikel": "required"})
		return
	}
	c := h.session(w, r)
	line, err := c.AddLine(cart.AddRequest{
		Name:    req.Name,
		Team:    req.Team,
		Nummer:  req.Nummer,
		Artikel: req.Artikel,
		Groesse: req.Groesse,
		Farbe:   req.Farbe,
		Menge:   req.Menge,
		Details: req.Details,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"line": line, "total": c.GrandTotal().StringFixed(2)})
}

// RemoveLine: DELETE /cart/lines?index=N
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_index", nil)
		return
	}
	c := h.session(w, r)
	if err := c.RemoveLine(idx); err != nil {
		writeEngineError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, viewOf(c))
}

// Clear: POST /cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	c := h.session(w, r)
	c.Clear()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// Offer: GET /cart/offer.csv – current cart as a downloadable offer table
func (h *CartHandler) Offer(w http.ResponseWriter, r *http.Request) {
	c := h.session(w, r)
	lines := c.Lines()
	if len(lines) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "empty_cart", nil)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="angebot.csv"`)
	if err := export.WriteOfferCSV(w, lines); err != nil {
		// headers are already out; nothing sensible left to send
		_ = err
	}
}

// Invoice: GET /cart/invoice.pdf – invoice for the current cart. The first
// line's customer and team fill the header, matching the single-customer-
// per-cart assumption.
func (h *CartHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	c := h.session(w, r)
	lines := c.Lines()
	if len(lines) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "empty_cart", nil)
		return
	}
	inv := export.InvoiceModel(lines, lines[0].Customer.Name, lines[0].Customer.Team, time.Now())
	data, err := pdf.Render(inv)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Rechnung.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Submit: POST /cart/submit – persists every line as one row to the chosen
// sink. Success empties the cart; failure leaves it fully intact so the user
// can retry or switch sinks.
func (h *CartHandler) Submit(w http.ResponseWriter, r *http.Request) {
	type submitReq struct {
		Sink string `json:"sink"`
	}
	var req submitReq
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
	}
	if req.Sink == "" {
		req.Sink = r.URL.Query().Get("sink")
	}
	if req.Sink == "" {
		req.Sink = "store"
	}
	target, ok := h.Sinks[req.Sink]
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_sink", map[string]string{"sink": req.Sink})
		return
	}
	c := h.session(w, r)
	lines := c.Lines()
	if len(lines) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "empty_cart", nil)
		return
	}
	rows := export.Rows(lines, time.Now())
	if err := target.AppendRows(r.Context(), rows); err != nil {
		httpx.JSONError(w, http.StatusBadGateway, "sink_unavailable", map[string]string{"reason": err.Error()})
		return
	}
	c.Clear()
	httpx.JSON(w, http.StatusOK, map[string]any{"status": "submitted", "sink": target.Name(), "rows": len(rows)})
}

func writeEngineError(w http.ResponseWriter, err error) {
	details := map[string]string{"reason": err.Error()}
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		httpx.JSONError(w, http.StatusBadRequest, "invalid_quantity", details)
	case errors.Is(err, cart.ErrSizeNotAllowed):
		httpx.JSONError(w, http.StatusBadRequest, "size_not_allowed", details)
	case errors.Is(err, cart.ErrIndexOutOfRange):
		httpx.JSONError(w, http.StatusBadRequest, "index_out_of_range", details)
	case errors.Is(err, pricing.ErrSizeNotPriced):
		httpx.JSONError(w, http.StatusBadRequest, "size_not_priced", details)
	case errors.Is(err, pricing.ErrUnknownArticle):
		httpx.JSONError(w, http.StatusNotFound, "unknown_article", details)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
