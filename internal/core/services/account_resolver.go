package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmos0/cloud-mail/internal/apperrors"
	"github.com/vmos0/cloud-mail/internal/core/domain"
	portsrepo "github.com/vmos0/cloud-mail/internal/core/ports/repositories"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
)

// accountResolver owns the identity-to-account decision. Resolution is a
// strict first-match-wins ladder; every step consults the stores through
// their ports and any genuine store failure propagates instead of being
// read as "not found".
type accountResolver struct {
	oauthRepo portsrepo.OAuthIdentityRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
	suggester portssvc.EmailSuggesterSvc
	// reuseProviders marks providers whose unlinked identities may adopt an
	// account bound to the same external user id under another provider.
	reuseProviders map[domain.Provider]bool
}

// NewAccountResolver creates the resolver. reuseProviders carries the
// cross-provider reuse capability per provider.
func NewAccountResolver(
	oauthRepo portsrepo.OAuthIdentityRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	suggester portssvc.EmailSuggesterSvc,
	reuseProviders map[domain.Provider]bool,
) portssvc.AccountResolverSvc {
	return &accountResolver{
		oauthRepo:      oauthRepo,
		userRepo:       userRepo,
		suggester:      suggester,
		reuseProviders: reuseProviders,
	}
}

var _ portssvc.AccountResolverSvc = (*accountResolver)(nil)

func (r *accountResolver) Resolve(ctx context.Context, identity domain.ExternalIdentity) (*domain.Resolution, error) {
	// The upsert is the one write that must survive even when the login as a
	// whole fails to resolve: a retry needs to find the row.
	row, err := r.oauthRepo.UpsertIdentity(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to record oauth identity: %w", err)
	}

	if row.Linked() {
		user, err := r.userRepo.FindUserByID(ctx, row.UserID, true)
		if err == nil {
			return &domain.Resolution{Identity: row, User: user}, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		// The linked account was hard-removed; treat the identity as
		// unlinked and keep walking the ladder.
	}

	if r.reuseProviders[identity.Provider] {
		res, err := r.adoptExistingBinding(ctx, row)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}

	return r.unresolved(ctx, row, identity.Username)
}

// adoptExistingBinding looks for an account already bound to the same
// external user id under any provider record and re-links this row to it.
// Returns (nil, nil) when no usable binding exists.
func (r *accountResolver) adoptExistingBinding(ctx context.Context, row *domain.OAuthIdentity) (*domain.Resolution, error) {
	linked, err := r.oauthRepo.FindLinkedByExternalUserID(ctx, row.ExternalUserID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if linked.OAuthID == row.OAuthID {
		// Our own row; its account was already ruled out above.
		return nil, nil
	}

	user, err := r.userRepo.FindUserByID(ctx, linked.UserID, true)
	if errors.Is(err, apperrors.ErrNotFound) {
		// Dangling binding on the other row; not adoptable.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.oauthRepo.SetIdentityUser(ctx, row.OAuthID, linked.UserID); err != nil {
		return nil, fmt.Errorf("failed to adopt existing binding: %w", err)
	}
	row.UserID = linked.UserID
	return &domain.Resolution{Identity: row, User: user}, nil
}

// unresolved builds the needs-registration outcome: the deterministic default
// address plus suggestions when it is taken.
func (r *accountResolver) unresolved(ctx context.Context, row *domain.OAuthIdentity, username string) (*domain.Resolution, error) {
	defaultEmail := r.suggester.DefaultEmail(username)

	_, err := r.userRepo.FindUserByEmail(ctx, defaultEmail, true)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.Resolution{
			Identity:       row,
			DefaultEmail:   defaultEmail,
			EmailAvailable: true,
			Suggestions:    []string{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	suggestions, err := r.suggester.Suggest(ctx, username)
	if err != nil {
		return nil, err
	}
	return &domain.Resolution{
		Identity:       row,
		DefaultEmail:   defaultEmail,
		EmailAvailable: false,
		Suggestions:    suggestions,
	}, nil
}
