package domain

// Tag is a label with a unique human-readable name. Removing a tag does not
// cascade into queries that reference it; readers resolve dangling
// references lazily.
type Tag struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// EntityID implements state.Entity.
func (t Tag) EntityID() string { return t.ID }
