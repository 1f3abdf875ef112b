package request

// The two role-specific view shapes. Both projections are pure and total;
// they preserve id/name/quantity/unit of every article, while status
// information is deliberately lossy and must not be assumed reversible.

// ChairmanArticle drops the adjudication details from an article.
type ChairmanArticle struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Quantity int           `json:"quantity"`
	Unit     string        `json:"unit"`
	Status   ArticleStatus `json:"status"`
}

// ChairmanRequest is the approver-facing shape, a near-identity
// restructuring of the canonical record.
type ChairmanRequest struct {
	ID           string            `json:"id"`
	RequestedBy  string            `json:"requestedBy"`
	Organisation string            `json:"organisation"`
	Priority     Priority          `json:"priority"`
	Status       Status            `json:"status"`
	RequestDate  string            `json:"requestDate"`
	Deadline     string            `json:"deadline"`
	Notes        string            `json:"notes"`
	Articles     []ChairmanArticle `json:"articles"`
	History      []HistoryEntry    `json:"history"`
}

// EmployeeArticle surfaces the requester-facing status vocabulary. The
// approved quantity is the only signal distinguishing a full from a
// partial approval.
type EmployeeArticle struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
	Unit             string `json:"unit"`
	Status           string `json:"status"`
	ApprovedQuantity *int   `json:"approvedQuantity,omitempty"`
}

// EmployeeRequest is the "my requests" shape shown to the requester.
type EmployeeRequest struct {
	ID          string            `json:"id"`
	RequestedBy string            `json:"requestedBy"`
	Priority    Priority          `json:"priority"`
	Status      string            `json:"status"`
	RequestDate string            `json:"requestDate"`
	Deadline    string            `json:"deadline"`
	Notes       string            `json:"notes"`
	Articles    []EmployeeArticle `json:"articles"`
}

// Mapping tables between the canonical vocabulary and the requester-facing
// one. Kept explicit so the vocabularies cannot drift apart silently.
var employeeStatusNames = map[Status]string{
	StatusOpen:     "Ausstehend",
	StatusAccepted: "Genehmigt",
	StatusRejected: "Abgelehnt",
	StatusPartial:  "Teilweise genehmigt",
}

var employeeArticleStatusNames = map[ArticleStatus]string{
	ArticlePending:  "Ausstehend",
	ArticleAccepted: "Genehmigt",
	ArticleRejected: "Abgelehnt",
}

// ToChairmanView projects a canonical record into the approver shape.
func ToChairmanView(r Request) ChairmanRequest {
	articles := make([]ChairmanArticle, len(r.Articles))
	for i, a := range r.Articles {
		articles[i] = ChairmanArticle{
			ID:       a.ID,
			Name:     a.Name,
			Quantity: a.Quantity,
			Unit:     a.Unit,
			Status:   a.Status,
		}
	}
	return ChairmanRequest{
		ID:           r.ID,
		RequestedBy:  r.RequestedBy,
		Organisation: r.Organisation,
		Priority:     r.Priority,
		Status:       r.Status,
		RequestDate:  r.RequestDate,
		Deadline:     r.Deadline,
		Notes:        r.Notes,
		Articles:     articles,
		History:      r.History,
	}
}

// ToEmployeeView projects a canonical record into the requester shape,
// renaming the status vocabulary. Unmapped statuses pass through verbatim
// so the projection stays total.
func ToEmployeeView(r Request) EmployeeRequest {
	articles := make([]EmployeeArticle, len(r.Articles))
	for i, a := range r.Articles {
		status, ok := employeeArticleStatusNames[a.Status]
		if !ok {
			status = string(a.Status)
		}
		articles[i] = EmployeeArticle{
			ID:               a.ID,
			Name:             a.Name,
			Quantity:         a.Quantity,
			Unit:             a.Unit,
			Status:           status,
			ApprovedQuantity: cloneInt(a.ApprovedQuantity),
		}
	}
	status, ok := employeeStatusNames[r.Status]
	if !ok {
		status = string(r.Status)
	}
	return EmployeeRequest{
		ID:          r.ID,
		RequestedBy: r.RequestedBy,
		Priority:    r.Priority,
		Status:      status,
		RequestDate: r.RequestDate,
		Deadline:    r.Deadline,
		Notes:       r.Notes,
		Articles:    articles,
	}
}
