package repositories

import (
	"context"

	"github.com/vmos0/cloud-mail/internal/core/domain"
)

// OAuthIdentityReader defines read operations over stored OAuth identities.
type OAuthIdentityReader interface {
	// FindIdentityByID retrieves an identity row by its surrogate key.
	FindIdentityByID(ctx context.Context, oauthID int64) (*domain.OAuthIdentity, error)

	// FindIdentityByProviderUser retrieves the unique row for
	// (provider, external user id), or apperrors.ErrNotFound.
	FindIdentityByProviderUser(ctx context.Context, provider domain.Provider, externalUserID string) (*domain.OAuthIdentity, error)

	// FindLinkedByExternalUserID retrieves any identity row, regardless of
	// provider, that carries the given external user id and is linked to an
	// account (user_id != 0). Used for cross-provider identity reuse; the
	// match is keyed strictly on recorded bindings, never on username or
	// email heuristics.
	FindLinkedByExternalUserID(ctx context.Context, externalUserID string) (*domain.OAuthIdentity, error)
}

// OAuthIdentityWriter defines write operations over stored OAuth identities.
type OAuthIdentityWriter interface {
	// UpsertIdentity inserts the row for (provider, external user id) with
	// user_id = 0, or refreshes the profile snapshot if the row already
	// exists, preserving its user_id. A duplicate-key race from a concurrent
	// login must resolve to the surviving row, never to an error.
	UpsertIdentity(ctx context.Context, identity domain.ExternalIdentity) (*domain.OAuthIdentity, error)

	// SetIdentityUser points the identity row at the given account.
	SetIdentityUser(ctx context.Context, oauthID int64, userID int64) error

	// DeleteByProviderAndUser removes the identity rows a user holds under
	// one provider. Deleting zero rows is not an error.
	DeleteByProviderAndUser(ctx context.Context, provider domain.Provider, userID int64) error

	// DeleteOrphans removes every identity row with user_id = 0 and reports
	// how many rows were deleted.
	DeleteOrphans(ctx context.Context) (int64, error)
}

// OAuthIdentityRepositoryFacade combines all OAuth identity repository interfaces.
type OAuthIdentityRepositoryFacade interface {
	OAuthIdentityReader
	OAuthIdentityWriter
}
