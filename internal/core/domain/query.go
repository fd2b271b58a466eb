package domain

// Reply is a single staff answer on a query. Replies are append-only.
type Reply struct {
	ID      string `json:"_id"`
	Content string `json:"content"`
	By      User   `json:"by"`
}

// Query is a customer-raised support case: an ordered, append-only reply
// thread plus a set of tag references. The tag set is replaced wholesale by
// each tagging operation, never merged.
type Query struct {
	ID         string  `json:"_id"`
	CustomerID string  `json:"customerId"`
	Customer   User    `json:"customer"`
	Title      string  `json:"title"`
	Subject    string  `json:"subject"`
	Content    string  `json:"content"`
	Replies    []Reply `json:"replies"`
	Tags       []Tag   `json:"tags"`
}

// EntityID implements state.Entity.
func (q Query) EntityID() string { return q.ID }
