package session

// Roles
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Session is the authenticated identity plus role for the current context.
// At most one session is active at a time, persisted under the "user" key so
// it survives reload.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s Session) IsStudent() bool {
	return s.Role == RoleStudent
}
