package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChairmanViewPreservesIdentifiers(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	view := ToChairmanView(req)

	assert.Equal(t, req.ID, view.ID)
	assert.Equal(t, req.Status, view.Status)
	assert.Equal(t, req.Priority, view.Priority)
	require.Len(t, view.Articles, len(req.Articles))
	for i, a := range view.Articles {
		assert.Equal(t, req.Articles[i].ID, a.ID)
		assert.Equal(t, req.Articles[i].Name, a.Name)
		assert.Equal(t, req.Articles[i].Quantity, a.Quantity)
		assert.Equal(t, req.Articles[i].Unit, a.Unit)
	}
	assert.Equal(t, req.History, view.History)
}

func TestEmployeeViewVocabulary(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusOpen, "Ausstehend"},
		{StatusAccepted, "Genehmigt"},
		{StatusRejected, "Abgelehnt"},
		{StatusPartial, "Teilweise genehmigt"},
	}

	for _, tc := range cases {
		req, err := NewFromCart(testCart(), testMeta(), NewSequence())
		require.NoError(t, err)
		req.Status = tc.status

		view := ToEmployeeView(req)
		assert.Equal(t, tc.want, view.Status, "status %s", tc.status)
	}
}

func TestEmployeeViewArticleVocabulary(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	three := 3
	updated, err := UpdateStatus(req, StatusPartial, "", "Reviewer", map[string]ArticleUpdate{
		req.Articles[0].ID: {Status: ArticleAccepted, ApprovedQuantity: &three},
	})
	require.NoError(t, err)

	view := ToEmployeeView(updated)
	require.Len(t, view.Articles, 2)

	// A partially approved article still surfaces as "Genehmigt"; the
	// approved quantity is the only quantitative signal.
	assert.Equal(t, "Genehmigt", view.Articles[0].Status)
	require.NotNil(t, view.Articles[0].ApprovedQuantity)
	assert.Equal(t, 3, *view.Articles[0].ApprovedQuantity)

	assert.Equal(t, "Ausstehend", view.Articles[1].Status)
	assert.Nil(t, view.Articles[1].ApprovedQuantity)
}

func TestEmployeeViewPreservesIdentifiers(t *testing.T) {
	req, err := NewFromCart(testCart(), testMeta(), NewSequence())
	require.NoError(t, err)

	view := ToEmployeeView(req)

	assert.Equal(t, req.ID, view.ID)
	require.Len(t, view.Articles, len(req.Articles))
	for i, a := range view.Articles {
		assert.Equal(t, req.Articles[i].ID, a.ID)
		assert.Equal(t, req.Articles[i].Name, a.Name)
		assert.Equal(t, req.Articles[i].Quantity, a.Quantity)
		assert.Equal(t, req.Articles[i].Unit, a.Unit)
	}
}

// Both projections must be total: edge-shaped records (no articles, foreign
// status strings, creation-only history) project without panicking.
func TestProjectionsAreTotal(t *testing.T) {
	edge := Request{
		ID:     "REQ-042",
		Status: Status("Unbekannt"),
	}

	chairman := ToChairmanView(edge)
	assert.Equal(t, "REQ-042", chairman.ID)
	assert.Empty(t, chairman.Articles)

	employee := ToEmployeeView(edge)
	assert.Equal(t, "REQ-042", employee.ID)
	// Unknown statuses pass through verbatim instead of vanishing.
	assert.Equal(t, "Unbekannt", employee.Status)

	edge.Articles = []Article{{ID: "REQ-042-A1", Status: ArticleStatus("Weird")}}
	employee = ToEmployeeView(edge)
	assert.Equal(t, "Weird", employee.Articles[0].Status)
}
