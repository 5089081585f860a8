package services

import (
	"context"
	"fmt"

	"github.com/vmos0/cloud-mail/internal/core/domain"
	portsrepo "github.com/vmos0/cloud-mail/internal/core/ports/repositories"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
	"github.com/vmos0/cloud-mail/internal/utils"
)

// UserService exposes the narrow account operations the OAuth core needs:
// reads that can see soft-deleted rows, and auto-registration.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) GetUserByID(ctx context.Context, userID int64, includeDeleted bool) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID, includeDeleted)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string, includeDeleted bool) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email, includeDeleted)
}

// RegisterUser creates a live account for email. code is the registration
// code handed through from the bind flow; it is carried for parity with the
// password registration surface, which owns its verification.
func (s *UserService) RegisterUser(ctx context.Context, email string, password string, code string) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash generated password: %w", err)
	}

	user := domain.User{
		Email:        email,
		PasswordHash: hash,
	}
	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to register user %s: %w", email, err)
	}
	return saved, nil
}
