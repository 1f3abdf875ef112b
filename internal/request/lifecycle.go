package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"crisis-supply-api-server/internal/models"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrUnknownStatus  = errors.New("unknown request status")
	ErrUnknownArticle = errors.New("article update targets unknown article")
	ErrQuantityRange  = errors.New("approved quantity out of range")
)

// Meta carries the submission form fields captured at creation.
type Meta struct {
	Priority     Priority `json:"priority"`
	Deadline     string   `json:"deadline"`
	Notes        string   `json:"notes"`
	RequestedBy  string   `json:"requestedBy"`
	Organisation string   `json:"organisation"`
}

// NewFromCart builds the canonical record for a submitted cart. One article
// is created per cart item, in cart order; a missing or non-positive
// requested quantity counts as 1. The only side effect is advancing seq.
func NewFromCart(cart []models.InventoryItem, meta Meta, seq *Sequence) (Request, error) {
	if len(cart) == 0 {
		return Request{}, ErrEmptyCart
	}

	id := seq.Next()
	articles := make([]Article, 0, len(cart))
	for i, item := range cart {
		qty := item.RequestedQuantity
		if qty <= 0 {
			qty = 1
		}
		articles = append(articles, Article{
			ID:       fmt.Sprintf("%s-A%d", id, i+1),
			Name:     item.Product,
			Quantity: qty,
			Unit:     item.Unit,
			Status:   ArticlePending,
			Location: item.Location,
		})
	}

	now := time.Now()
	return Request{
		ID:           id,
		RequestedBy:  meta.RequestedBy,
		Organisation: meta.Organisation,
		Priority:     meta.Priority,
		Status:       StatusOpen,
		RequestDate:  now.Format("2006-01-02"),
		Deadline:     meta.Deadline,
		Notes:        meta.Notes,
		Articles:     articles,
		History: []HistoryEntry{{
			ID:        uuid.New().String(),
			Timestamp: now.Format(time.RFC3339),
			Action:    "Anfrage erstellt",
			Comment:   fmt.Sprintf("Anfrage mit %d Artikeln erstellt", len(articles)),
			Articles:  cloneArticles(articles),
			User:      meta.RequestedBy,
		}},
	}, nil
}

// ArticleUpdate is a per-article disposition override. It is applied
// verbatim: both status and approved quantity are overwritten, a nil
// ApprovedQuantity clears the field.
type ArticleUpdate struct {
	Status           ArticleStatus `json:"status"`
	ApprovedQuantity *int          `json:"approvedQuantity"`
}

// UpdateStatus returns a new record with the transition applied and one
// history entry appended. The input is not mutated, so readers of the prior
// snapshot are unaffected.
//
// Articles named in updates take their override verbatim. All others follow
// the bulk rule for newStatus: Akzeptiert approves in full, Abgelehnt
// rejects and clears the approved quantity, and any other status leaves the
// article untouched (a true partial workflow supplies explicit updates).
func UpdateStatus(req Request, newStatus Status, comment, user string, updates map[string]ArticleUpdate) (Request, error) {
	if !newStatus.Valid() {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
	}

	quantities := make(map[string]int, len(req.Articles))
	for _, a := range req.Articles {
		quantities[a.ID] = a.Quantity
	}
	for id, u := range updates {
		qty, ok := quantities[id]
		if !ok {
			return Request{}, fmt.Errorf("%w: %s", ErrUnknownArticle, id)
		}
		if u.ApprovedQuantity != nil && (*u.ApprovedQuantity < 0 || *u.ApprovedQuantity > qty) {
			return Request{}, fmt.Errorf("%w: article %s, approved %d of %d",
				ErrQuantityRange, id, *u.ApprovedQuantity, qty)
		}
	}

	articles := make([]Article, len(req.Articles))
	for i, a := range req.Articles {
		next := a
		if u, ok := updates[a.ID]; ok {
			next.Status = u.Status
			next.ApprovedQuantity = cloneInt(u.ApprovedQuantity)
		} else {
			switch newStatus {
			case StatusAccepted:
				q := a.Quantity
				next.Status = ArticleAccepted
				next.ApprovedQuantity = &q
			case StatusRejected:
				next.Status = ArticleRejected
				next.ApprovedQuantity = nil
			}
		}
		articles[i] = next
	}

	history := make([]HistoryEntry, len(req.History), len(req.History)+1)
	copy(history, req.History)
	history = append(history, HistoryEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Action:    "Anfrage " + strings.ToLower(string(newStatus)),
		Comment:   comment,
		Articles:  cloneArticles(articles),
		User:      user,
	})

	updated := req
	updated.Status = newStatus
	updated.Articles = articles
	updated.History = history
	return updated, nil
}

func cloneArticles(articles []Article) []Article {
	out := make([]Article, len(articles))
	for i, a := range articles {
		out[i] = a
		out[i].ApprovedQuantity = cloneInt(a.ApprovedQuantity)
	}
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
