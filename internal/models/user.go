package models

import "time"

// User represents a mailbox account row in the users table.
type User struct {
	UserID       int64     `db:"user_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsDel        int16     `db:"is_del"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
