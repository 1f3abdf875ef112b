package request

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"crisis-supply-api-server/internal/models"
)

func testCart() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: 1, Location: "Hauptlager Nord", Product: "Feldbetten", Unit: "Stück", RequestedQuantity: 5},
		{ID: 2, Location: "Hauptlager Nord", Product: "Decken", Unit: "Stück", RequestedQuantity: 10},
	}
}

func testMeta() Meta {
	return Meta{
		Priority:     PriorityHigh,
		Deadline:     "2025-12-01",
		Notes:        "Test",
		RequestedBy:  "A",
		Organisation: "B",
	}
}

func TestNewFromCartBuildsOpenRequest(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	assert.Equal(t, "REQ-001", req.ID)
	assert.Equal(t, StatusOpen, req.Status)
	assert.Equal(t, PriorityHigh, req.Priority)
	assert.Equal(t, "2025-12-01", req.Deadline)
	assert.Equal(t, time.Now().Format("2006-01-02"), req.RequestDate)

	require.Len(t, req.Articles, 2)
	assert.Equal(t, "Feldbetten", req.Articles[0].Name)
	assert.Equal(t, 5, req.Articles[0].Quantity)
	assert.Equal(t, "Decken", req.Articles[1].Name)
	assert.Equal(t, 10, req.Articles[1].Quantity)
	for _, a := range req.Articles {
		assert.Equal(t, ArticlePending, a.Status)
		assert.Nil(t, a.ApprovedQuantity)
		assert.Equal(t, "Hauptlager Nord", a.Location)
	}

	require.Len(t, req.History, 1)
	assert.Equal(t, "Anfrage erstellt", req.History[0].Action)
	assert.Equal(t, "Anfrage mit 2 Artikeln erstellt", req.History[0].Comment)
	assert.Equal(t, "A", req.History[0].User)
	assert.Equal(t, req.Articles, req.History[0].Articles)
}

func TestNewFromCartArticleIDs(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	assert.Equal(t, "REQ-001-A1", req.Articles[0].ID)
	assert.Equal(t, "REQ-001-A2", req.Articles[1].ID)
}

func TestNewFromCartClampsQuantity(t *testing.T) {
	cart := []models.InventoryItem{
		{Product: "Zelte", Unit: "Stück", RequestedQuantity: 0},
		{Product: "Taschenlampen", Unit: "Stück", RequestedQuantity: -3},
	}

	req, err := NewFromCart(cart, testMeta(), NewSequence())
	require.NoError(t, err)

	assert.Equal(t, 1, req.Articles[0].Quantity)
	assert.Equal(t, 1, req.Articles[1].Quantity)
}

func TestNewFromCartEmptyCart(t *testing.T) {
	_, err := NewFromCart(nil, testMeta(), NewSequence())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestUpdateStatusBulkAccept(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	updated, err := UpdateStatus(req, StatusAccepted, "alles genehmigt", "Reviewer", nil)
	require.NoError(t, err)

	assert.Equal(t, StatusAccepted, updated.Status)
	for _, a := range updated.Articles {
		assert.Equal(t, ArticleAccepted, a.Status)
		require.NotNil(t, a.ApprovedQuantity)
		assert.Equal(t, a.Quantity, *a.ApprovedQuantity)
	}

	require.Len(t, updated.History, 2)
	assert.Equal(t, "Anfrage akzeptiert", updated.History[1].Action)
	assert.Equal(t, "alles genehmigt", updated.History[1].Comment)
	assert.Equal(t, "Reviewer", updated.History[1].User)
	assert.Equal(t, updated.Articles, updated.History[1].Articles)
}

func TestUpdateStatusBulkReject(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	updated, err := UpdateStatus(req, StatusRejected, "kein Bestand", "Reviewer", nil)
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, updated.Status)
	for _, a := range updated.Articles {
		assert.Equal(t, ArticleRejected, a.Status)
		assert.Nil(t, a.ApprovedQuantity)
	}
	assert.Equal(t, "Anfrage abgelehnt", updated.History[1].Action)
}

func TestUpdateStatusPartialOverride(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	three := 3
	updated, err := UpdateStatus(req, StatusPartial, "partial ok", "Reviewer", map[string]ArticleUpdate{
		req.Articles[0].ID: {Status: ArticleAccepted, ApprovedQuantity: &three},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPartial, updated.Status)
	require.Len(t, updated.History, 2)
	assert.Equal(t, "Anfrage teilweise genehmigt", updated.History[1].Action)

	require.NotNil(t, updated.Articles[0].ApprovedQuantity)
	assert.Equal(t, 3, *updated.Articles[0].ApprovedQuantity)
	assert.Equal(t, ArticleAccepted, updated.Articles[0].Status)

	// No override supplied for the second article, so it stays Pending.
	assert.Equal(t, ArticlePending, updated.Articles[1].Status)
	assert.Nil(t, updated.Articles[1].ApprovedQuantity)
}

func TestUpdateStatusDoesNotMutateInput(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	before, err := UpdateStatus(req, StatusPartial, "", "x", nil)
	require.NoError(t, err)
	snapshot := cloneArticles(before.Articles)
	historyLen := len(before.History)

	_, err = UpdateStatus(before, StatusAccepted, "durchgewunken", "Reviewer", nil)
	require.NoError(t, err)

	assert.Equal(t, snapshot, before.Articles)
	assert.Equal(t, StatusPartial, before.Status)
	assert.Len(t, before.History, historyLen)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	_, err = UpdateStatus(req, Status("Erledigt"), "", "Reviewer", nil)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateStatusUnknownArticle(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	_, err = UpdateStatus(req, StatusPartial, "", "Reviewer", map[string]ArticleUpdate{
		"REQ-999-A1": {Status: ArticleAccepted},
	})
	assert.ErrorIs(t, err, ErrUnknownArticle)
}

func TestUpdateStatusQuantityOutOfRange(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	tooMany := req.Articles[0].Quantity + 1
	_, err = UpdateStatus(req, StatusPartial, "", "Reviewer", map[string]ArticleUpdate{
		req.Articles[0].ID: {Status: ArticleAccepted, ApprovedQuantity: &tooMany},
	})
	assert.ErrorIs(t, err, ErrQuantityRange)

	negative := -1
	_, err = UpdateStatus(req, StatusPartial, "", "Reviewer", map[string]ArticleUpdate{
		req.Articles[0].ID: {Status: ArticleRejected, ApprovedQuantity: &negative},
	})
	assert.ErrorIs(t, err, ErrQuantityRange)
}

// Property checks: history stays append-only and approved quantities stay
// within bounds for arbitrary transition sequences.
func TestLifecycleProperties(t *testing.T) {
	statuses := []Status{StatusOpen, StatusAccepted, StatusRejected, StatusPartial}
	articleStatuses := []ArticleStatus{ArticlePending, ArticleAccepted, ArticleRejected}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(t, "articles")
		cart := make([]models.InventoryItem, n)
		for i := range cart {
			cart[i] = models.InventoryItem{
				Product:           fmt.Sprintf("Artikel %d", i+1),
				Unit:              "Stück",
				RequestedQuantity: rapid.IntRange(1, 50).Draw(t, "quantity"),
			}
		}

		req, err := NewFromCart(cart, testMeta(), NewSequence())
		if err != nil {
			t.Fatalf("NewFromCart failed: %v", err)
		}

		steps := rapid.IntRange(1, 8).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			status := rapid.SampledFrom(statuses).Draw(t, "status")

			var updates map[string]ArticleUpdate
			if rapid.Bool().Draw(t, "override") {
				idx := rapid.IntRange(0, n-1).Draw(t, "articleIndex")
				article := req.Articles[idx]
				approved := rapid.IntRange(0, article.Quantity).Draw(t, "approved")
				updates = map[string]ArticleUpdate{
					article.ID: {
						Status:           rapid.SampledFrom(articleStatuses).Draw(t, "articleStatus"),
						ApprovedQuantity: &approved,
					},
				}
			}

			prev := req
			req, err = UpdateStatus(prev, status, "Kommentar", "Reviewer", updates)
			if err != nil {
				t.Fatalf("UpdateStatus failed: %v", err)
			}

			if len(req.History) != len(prev.History)+1 {
				t.Fatalf("history grew by %d entries, want 1", len(req.History)-len(prev.History))
			}
			assert.Equal(t, prev.History, req.History[:len(prev.History)])

			for _, a := range req.Articles {
				if a.ApprovedQuantity != nil {
					if *a.ApprovedQuantity < 0 || *a.ApprovedQuantity > a.Quantity {
						t.Fatalf("article %s: approved %d out of range [0,%d]", a.ID, *a.ApprovedQuantity, a.Quantity)
					}
				}
			}
		}
	})
}
