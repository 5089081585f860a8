package domain

// Provider identifies an external OAuth provider.
type Provider string

const (
	ProviderGitHub  Provider = "github"
	ProviderLinuxDo Provider = "linuxdo"
)

// Valid reports whether the provider is one the system knows about.
func (p Provider) Valid() bool {
	switch p {
	case ProviderGitHub, ProviderLinuxDo:
		return true
	}
	return false
}

func (p Provider) String() string {
	return string(p)
}

// ExternalIdentity is the provider-normalized view of a third-party user,
// produced fresh on every login. It is never persisted as-is; the identity
// store keeps a snapshot of it on the OAuthIdentity row.
type ExternalIdentity struct {
	Provider       Provider `json:"provider"`
	ExternalUserID string   `json:"externalUserId"`
	Username       string   `json:"username"`
	DisplayName    string   `json:"displayName"`
	AvatarURL      string   `json:"avatarUrl"`
	TrustLevel     int      `json:"trustLevel"`
	Active         bool     `json:"active"`
	Silenced       bool     `json:"silenced"`
}

// NoUser is the sentinel user id on an OAuthIdentity row that is not yet
// linked to any mailbox account. Rows carrying it are "orphans" and are
// removed by the scheduled sweep.
const NoUser int64 = 0

// OAuthIdentity is the persisted binding between an external identity and a
// mailbox account. At most one row exists per (provider, external user id).
type OAuthIdentity struct {
	OAuthID        int64    `json:"oauthId"`
	Provider       Provider `json:"provider"`
	ExternalUserID string   `json:"externalUserId"`
	UserID         int64    `json:"userId"`
	Username       string   `json:"username"`
	DisplayName    string   `json:"displayName"`
	AvatarURL      string   `json:"avatarUrl"`
	TrustLevel     int      `json:"trustLevel"`
	Active         bool     `json:"active"`
	Silenced       bool     `json:"silenced"`
	AuditFields
}

// Linked reports whether the identity points at some account.
func (o *OAuthIdentity) Linked() bool {
	return o != nil && o.UserID != NoUser
}

// Resolution is the outcome of resolving an external identity against the
// account store. Exactly one of the two shapes applies: User is non-nil when
// an account is already linked; otherwise DefaultEmail, EmailAvailable and
// Suggestions describe what the caller needs to complete registration.
type Resolution struct {
	Identity *OAuthIdentity `json:"identity"`

	User *User `json:"user,omitempty"`

	DefaultEmail   string   `json:"defaultEmail,omitempty"`
	EmailAvailable bool     `json:"emailAvailable,omitempty"`
	Suggestions    []string `json:"suggestions,omitempty"`
}

// Resolved reports whether resolution produced a linked account.
func (r *Resolution) Resolved() bool {
	return r != nil && r.User != nil
}

// LoginResult is what an OAuth login hands back to the caller. Token is empty
// when no account could be resolved; in that case DefaultEmail,
// EmailAvailable and Suggestions tell the caller how to finish registration
// before retrying the login.
type LoginResult struct {
	Identity       *OAuthIdentity `json:"userInfo"`
	Token          string         `json:"token,omitempty"`
	DefaultEmail   string         `json:"defaultEmail,omitempty"`
	EmailAvailable bool           `json:"isEmailAvailable,omitempty"`
	Suggestions    []string       `json:"emailSuggestions,omitempty"`
}
