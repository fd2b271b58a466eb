package domain

// Role is the closed set of actor roles issued by the backend. The client
// never changes a role once issued.
type Role string

const (
	// RoleAdmin is support staff with user and meeting administration rights.
	RoleAdmin Role = "admin"
	// RoleUser is regular support staff.
	RoleUser Role = "user"
	// RoleCustomer is an end customer raising queries.
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the issued roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleCustomer:
		return true
	}
	return false
}

// Capability queries centralize every role check the client performs.
// Call sites ask for a capability, never compare role strings.

// CanManageUsers reports whether r may create, edit and remove accounts.
func (r Role) CanManageUsers() bool { return r == RoleAdmin }

// CanTag reports whether r may create and remove tags and re-tag queries.
func (r Role) CanTag() bool { return r == RoleAdmin || r == RoleUser }

// CanReply reports whether r may reply to customer queries.
func (r Role) CanReply() bool { return r == RoleAdmin || r == RoleUser }

// CanScheduleMeetings reports whether r may record meetings.
func (r Role) CanScheduleMeetings() bool { return r == RoleAdmin || r == RoleUser }

// CanBrowseAllQueries reports whether r sees every query rather than only
// their own.
func (r Role) CanBrowseAllQueries() bool { return r != RoleCustomer }

// CanRaiseQueries reports whether r may open new queries.
func (r Role) CanRaiseQueries() bool { return r == RoleCustomer }

// User models an account in the support desk.
type User struct {
	ID           string `json:"_id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Zip          int    `json:"zip"`
	Role         Role   `json:"role"`
}

// EntityID implements state.Entity.
func (u User) EntityID() string { return u.ID }
