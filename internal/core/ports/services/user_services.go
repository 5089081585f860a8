package services

import (
	"context"

	"github.com/vmos0/cloud-mail/internal/core/domain"
)

// UserReaderSvc defines read operations over mailbox accounts.
type UserReaderSvc interface {
	// GetUserByID retrieves an account by id.
	GetUserByID(ctx context.Context, userID int64, includeDeleted bool) (*domain.User, error)

	// GetUserByEmail retrieves an account by email address.
	GetUserByEmail(ctx context.Context, email string, includeDeleted bool) (*domain.User, error)
}

// UserRegistrarSvc creates accounts. The OAuth bind flow delegates here when
// the target email matches no existing account.
type UserRegistrarSvc interface {
	// RegisterUser creates a new live account with the given email and
	// plaintext password. code is the registration code forwarded from the
	// caller of the bind flow.
	RegisterUser(ctx context.Context, email string, password string, code string) (*domain.User, error)
}

// UserSvcFacade combines all account service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserRegistrarSvc
}
