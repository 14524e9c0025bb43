package models

// Role tags a principal for shared-memory access checks. The core does
// not do authorization beyond ownership; admin only widens read access.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal is the already-authenticated caller a request runs as.
// Transport-layer auth is out of scope; every mutating operation
// receives one of these and attaches it to the records it creates.
type Principal struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// CanAccess reports whether the principal may touch a resource owned
// by ownerID.
func (p Principal) CanAccess(ownerID string) bool {
	return p.UserID == ownerID || p.Role == RoleAdmin
}
