package services

import (
	"context"

	"github.com/vmos0/cloud-mail/internal/core/domain"
)

// ProviderGatewaySvc exchanges an authorization code with an external OAuth
// provider and fetches the user's profile. Implementations make exactly two
// outbound calls and persist nothing.
type ProviderGatewaySvc interface {
	// ExchangeAndFetch returns the normalized external identity for the
	// authorization code. Fails with apperrors.ErrUpstreamAuth when the token
	// exchange is rejected and apperrors.ErrUpstreamProfile when the profile
	// fetch fails. Neither failure is retried.
	ExchangeAndFetch(ctx context.Context, provider domain.Provider, code string) (*domain.ExternalIdentity, error)
}

// AccountResolverSvc decides the account-linking outcome for a freshly
// normalized external identity.
type AccountResolverSvc interface {
	Resolve(ctx context.Context, identity domain.ExternalIdentity) (*domain.Resolution, error)
}

// EmailSuggesterSvc produces candidate mailbox addresses when the canonical
// default address for a username is taken.
type EmailSuggesterSvc interface {
	// DefaultEmail returns the canonical address for a username.
	DefaultEmail(username string) string

	// Suggest returns at most three available candidate addresses.
	Suggest(ctx context.Context, username string) ([]string, error)
}

// SessionSvcFacade mints a session token once an account is definitively
// resolved. The OAuth core only ever calls it with a live account's email.
type SessionSvcFacade interface {
	IssueSession(ctx context.Context, email string) (string, error)
}

// OAuthSvcFacade is the reconciliation engine: it orchestrates the provider
// gateway, identity store and account resolver for logins, and exposes the
// bind/unbind/sweep operations.
type OAuthSvcFacade interface {
	// Login exchanges the code, reconciles the external identity against the
	// stores and either returns a minted session or the data the caller
	// needs to finish registration.
	Login(ctx context.Context, provider domain.Provider, code string) (*domain.LoginResult, error)

	// BindUser links the identity row to the account holding email,
	// registering the account first when none exists. Fails with
	// apperrors.ErrAlreadyBound when the identity already resolves to a live
	// account, and apperrors.ErrDeletedEmail when email belongs to a
	// soft-deleted one.
	BindUser(ctx context.Context, oauthID int64, email string, code string) (*domain.LoginResult, error)

	// Unbind removes the user's identity rows under the provider. Unbinding
	// an already-unbound user is a no-op.
	Unbind(ctx context.Context, provider domain.Provider, userID int64) error

	// SweepOrphans deletes every identity row still carrying user_id = 0 and
	// reports how many were removed. Invoked on an external cadence;
	// idempotent and safe to re-run.
	SweepOrphans(ctx context.Context) (int64, error)
}
