package shared

// Account roles. Staff write articles, lecturers read, admins manage accounts.
const (
	RoleStaff    = 1
	RoleLecturer = 2
	RoleAdmin    = 3
)

// Gin context keys set by the auth middleware
const (
	CtxAccountID = "accountID"
	CtxRole      = "role"
	CtxEmail     = "email"
)
