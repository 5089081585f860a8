package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmos0/cloud-mail/internal/apperrors"
	"github.com/vmos0/cloud-mail/internal/core/domain"
	portsrepo "github.com/vmos0/cloud-mail/internal/core/ports/repositories"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
	"github.com/vmos0/cloud-mail/internal/utils"
)

// OAuthService is the reconciliation engine. Each operation is a single
// logical request; the service holds no mutable state between calls, so
// concurrent logins are only as racy as the identity upsert, which is built
// to tolerate them.
type OAuthService struct {
	gateway   portssvc.ProviderGatewaySvc
	resolver  portssvc.AccountResolverSvc
	oauthRepo portsrepo.OAuthIdentityRepositoryFacade
	userSvc   portssvc.UserSvcFacade
	session   portssvc.SessionSvcFacade
}

// NewOAuthService creates the reconciliation engine.
func NewOAuthService(
	gateway portssvc.ProviderGatewaySvc,
	resolver portssvc.AccountResolverSvc,
	oauthRepo portsrepo.OAuthIdentityRepositoryFacade,
	userSvc portssvc.UserSvcFacade,
	session portssvc.SessionSvcFacade,
) *OAuthService {
	return &OAuthService{
		gateway:   gateway,
		resolver:  resolver,
		oauthRepo: oauthRepo,
		userSvc:   userSvc,
		session:   session,
	}
}

var _ portssvc.OAuthSvcFacade = (*OAuthService)(nil)

func (s *OAuthService) Login(ctx context.Context, provider domain.Provider, code string) (*domain.LoginResult, error) {
	identity, err := s.gateway.ExchangeAndFetch(ctx, provider, code)
	if err != nil {
		return nil, err
	}

	res, err := s.resolver.Resolve(ctx, *identity)
	if err != nil {
		return nil, err
	}

	if res.Resolved() {
		token, err := s.session.IssueSession(ctx, res.User.Email)
		if err != nil {
			return nil, err
		}
		return &domain.LoginResult{Identity: res.Identity, Token: token}, nil
	}

	// No session minted; the caller must register or pick a suggestion and
	// retry the login.
	return &domain.LoginResult{
		Identity:       res.Identity,
		DefaultEmail:   res.DefaultEmail,
		EmailAvailable: res.EmailAvailable,
		Suggestions:    res.Suggestions,
	}, nil
}

func (s *OAuthService) BindUser(ctx context.Context, oauthID int64, email string, code string) (*domain.LoginResult, error) {
	row, err := s.oauthRepo.FindIdentityByID(ctx, oauthID)
	if err != nil {
		return nil, err
	}

	if row.Linked() {
		current, err := s.userSvc.GetUserByID(ctx, row.UserID, true)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if current.Live() {
			return nil, apperrors.ErrAlreadyBound
		}
	}

	target, err := s.userSvc.GetUserByEmail(ctx, email, true)
	switch {
	case err == nil && target.IsDel:
		return nil, apperrors.ErrDeletedEmail
	case err == nil:
		// Existing live account; link directly.
	case errors.Is(err, apperrors.ErrNotFound):
		password, err := utils.GenRandomPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to generate password: %w", err)
		}
		target, err = s.userSvc.RegisterUser(ctx, email, password, code)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.oauthRepo.SetIdentityUser(ctx, row.OAuthID, target.UserID); err != nil {
		return nil, err
	}
	row.UserID = target.UserID

	token, err := s.session.IssueSession(ctx, target.Email)
	if err != nil {
		return nil, err
	}
	return &domain.LoginResult{Identity: row, Token: token}, nil
}

func (s *OAuthService) Unbind(ctx context.Context, provider domain.Provider, userID int64) error {
	if !provider.Valid() {
		return fmt.Errorf("%w: unknown oauth provider %q", apperrors.ErrValidation, provider)
	}
	return s.oauthRepo.DeleteByProviderAndUser(ctx, provider, userID)
}

func (s *OAuthService) SweepOrphans(ctx context.Context) (int64, error) {
	return s.oauthRepo.DeleteOrphans(ctx)
}
