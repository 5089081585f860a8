package repositories

import (
	"context"

	"github.com/vmos0/cloud-mail/internal/core/domain"
)

// UserReader defines read operations over mailbox accounts. Every lookup takes
// an includeDeleted flag because the reconciliation flow must see soft-deleted
// accounts when probing email availability, while session issuance must not.
type UserReader interface {
	// FindUserByID retrieves an account by id. Returns apperrors.ErrNotFound
	// when no row matches; any other error is a genuine store failure.
	FindUserByID(ctx context.Context, userID int64, includeDeleted bool) (*domain.User, error)

	// FindUserByEmail retrieves an account by email address.
	FindUserByEmail(ctx context.Context, email string, includeDeleted bool) (*domain.User, error)
}

// UserWriter defines the single write the OAuth core performs on accounts:
// creating one during auto-registration.
type UserWriter interface {
	// SaveUser persists a new account and returns it with its generated id.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// UserRepositoryFacade combines all account repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
