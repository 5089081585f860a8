package domain

// User represents a mailbox account. The OAuth reconciliation core treats
// accounts as read/compare-only, except for the narrow write of creating a new
// account during auto-registration.
type User struct {
	UserID       int64  `json:"userID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsDel        bool   `json:"isDel"`
	AuditFields
}

// Live reports whether the account is usable, i.e. not soft-deleted.
// Soft-deleted accounts are retained for collision checking and audit.
func (u *User) Live() bool {
	return u != nil && !u.IsDel
}
