package models

import "time"

// OAuthIdentity represents a row in the oauth_identity table. user_id = 0
// marks an orphan row that has not been linked to any mailbox account yet.
type OAuthIdentity struct {
	OAuthID        int64     `db:"oauth_id"`
	Provider       string    `db:"provider"`
	ExternalUserID string    `db:"external_user_id"`
	UserID         int64     `db:"user_id"`
	Username       string    `db:"username"`
	DisplayName    string    `db:"display_name"`
	AvatarURL      string    `db:"avatar_url"`
	TrustLevel     int       `db:"trust_level"`
	Active         bool      `db:"active"`
	Silenced       bool      `db:"silenced"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
