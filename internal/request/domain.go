package request

// Status is the request-level aggregate state. The German strings are the
// canonical vocabulary and serialize as-is, both to clients and to storage.
type Status string

const (
	StatusOpen     Status = "Offen"
	StatusAccepted Status = "Akzeptiert"
	StatusRejected Status = "Abgelehnt"
	StatusPartial  Status = "Teilweise genehmigt"
)

// Valid reports whether s is one of the four canonical statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusAccepted, StatusRejected, StatusPartial:
		return true
	}
	return false
}

// ArticleStatus tracks one article's disposition independent of the parent
// request's aggregate status. Articles are binary Accepted/Rejected; a
// partial approval is expressed through ApprovedQuantity while the parent
// request carries "Teilweise genehmigt".
type ArticleStatus string

const (
	ArticlePending  ArticleStatus = "Pending"
	ArticleAccepted ArticleStatus = "Accepted"
	ArticleRejected ArticleStatus = "Rejected"
)

type Priority string

const (
	PriorityLow      Priority = "Niedrig"
	PriorityMedium   Priority = "Mittel"
	PriorityHigh     Priority = "Hoch"
	PriorityCritical Priority = "Kritisch"
)

// Article is one line item of a request.
type Article struct {
	ID       string        `bson:"id" json:"id"`
	Name     string        `bson:"name" json:"name"`
	Quantity int           `bson:"quantity" json:"quantity"` // originally requested
	Unit     string        `bson:"unit" json:"unit"`
	Status   ArticleStatus `bson:"status" json:"status"`
	// ApprovedQuantity is set once the article has been adjudicated;
	// 0 <= ApprovedQuantity <= Quantity.
	ApprovedQuantity *int   `bson:"approvedQuantity,omitempty" json:"approvedQuantity,omitempty"`
	Location         string `bson:"location,omitempty" json:"location,omitempty"` // originating warehouse
}

// HistoryEntry is an immutable audit record capturing one state transition.
// Entries are append-only; they are never edited or removed once written.
type HistoryEntry struct {
	ID        string    `bson:"id" json:"id"`
	Timestamp string    `bson:"timestamp" json:"timestamp"` // ISO-8601
	Action    string    `bson:"action" json:"action"`
	Comment   string    `bson:"comment" json:"comment"`
	Articles  []Article `bson:"articles" json:"articles"` // snapshot at that moment
	User      string    `bson:"user" json:"user"`
}

// Request is the canonical record from which all role-specific view shapes
// are derived. It is only ever replaced as a whole, never mutated in place.
type Request struct {
	ID           string         `bson:"id" json:"id"` // REQ-NNN
	RequestedBy  string         `bson:"requestedBy" json:"requestedBy"`
	Organisation string         `bson:"organisation" json:"organisation"`
	Priority     Priority       `bson:"priority" json:"priority"`
	Status       Status         `bson:"status" json:"status"`
	RequestDate  string         `bson:"requestDate" json:"requestDate"` // YYYY-MM-DD
	Deadline     string         `bson:"deadline" json:"deadline"`
	Notes        string         `bson:"notes" json:"notes"`
	Articles     []Article      `bson:"articles" json:"articles"` // cart order
	History      []HistoryEntry `bson:"history" json:"history"`   // oldest first

	// Optional fulfillment metadata, populated by later transitions.
	PickupLocation string `bson:"pickupLocation,omitempty" json:"pickupLocation,omitempty"`
	PickupDate     string `bson:"pickupDate,omitempty" json:"pickupDate,omitempty"`
	ContactPerson  string `bson:"contactPerson,omitempty" json:"contactPerson,omitempty"`
	ContactPhone   string `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	ContactEmail   string `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	Instructions   string `bson:"instructions,omitempty" json:"instructions,omitempty"`
}
