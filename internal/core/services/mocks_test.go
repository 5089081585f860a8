package services_test

import (
	"context"

	"github.com/vmos0/cloud-mail/internal/core/domain"
	portsrepo "github.com/vmos0/cloud-mail/internal/core/ports/repositories"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// Shared mocks for the service tests. The OAuth services share the same two
// repositories, so the mocks live here instead of being redeclared per file.

// --- Mock OAuthIdentityRepository ---

type MockOAuthRepository struct {
	mock.Mock
}

func (m *MockOAuthRepository) FindIdentityByID(ctx context.Context, oauthID int64) (*domain.OAuthIdentity, error) {
	args := m.Called(ctx, oauthID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OAuthIdentity), args.Error(1)
}

func (m *MockOAuthRepository) FindIdentityByProviderUser(ctx context.Context, provider domain.Provider, externalUserID string) (*domain.OAuthIdentity, error) {
	args := m.Called(ctx, provider, externalUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OAuthIdentity), args.Error(1)
}

func (m *MockOAuthRepository) FindLinkedByExternalUserID(ctx context.Context, externalUserID string) (*domain.OAuthIdentity, error) {
	args := m.Called(ctx, externalUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OAuthIdentity), args.Error(1)
}

func (m *MockOAuthRepository) UpsertIdentity(ctx context.Context, identity domain.ExternalIdentity) (*domain.OAuthIdentity, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OAuthIdentity), args.Error(1)
}

func (m *MockOAuthRepository) SetIdentityUser(ctx context.Context, oauthID int64, userID int64) error {
	args := m.Called(ctx, oauthID, userID)
	return args.Error(0)
}

func (m *MockOAuthRepository) DeleteByProviderAndUser(ctx context.Context, provider domain.Provider, userID int64) error {
	args := m.Called(ctx, provider, userID)
	return args.Error(0)
}

func (m *MockOAuthRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.OAuthIdentityRepositoryFacade = (*MockOAuthRepository)(nil)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64, includeDeleted bool) (*domain.User, error) {
	args := m.Called(ctx, userID, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string, includeDeleted bool) (*domain.User, error) {
	args := m.Called(ctx, email, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock ProviderGateway ---

type MockProviderGateway struct {
	mock.Mock
}

func (m *MockProviderGateway) ExchangeAndFetch(ctx context.Context, provider domain.Provider, code string) (*domain.ExternalIdentity, error) {
	args := m.Called(ctx, provider, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExternalIdentity), args.Error(1)
}

var _ portssvc.ProviderGatewaySvc = (*MockProviderGateway)(nil)

// --- Mock AccountResolver ---

type MockAccountResolver struct {
	mock.Mock
}

func (m *MockAccountResolver) Resolve(ctx context.Context, identity domain.ExternalIdentity) (*domain.Resolution, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resolution), args.Error(1)
}

var _ portssvc.AccountResolverSvc = (*MockAccountResolver)(nil)

// --- Mock EmailSuggester ---

type MockEmailSuggester struct {
	mock.Mock
}

func (m *MockEmailSuggester) DefaultEmail(username string) string {
	args := m.Called(username)
	return args.String(0)
}

func (m *MockEmailSuggester) Suggest(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.EmailSuggesterSvc = (*MockEmailSuggester)(nil)

// --- Mock UserService ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int64, includeDeleted bool) (*domain.User, error) {
	args := m.Called(ctx, userID, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string, includeDeleted bool) (*domain.User, error) {
	args := m.Called(ctx, email, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, email string, password string, code string) (*domain.User, error) {
	args := m.Called(ctx, email, password, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock SessionService ---

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) IssueSession(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)
