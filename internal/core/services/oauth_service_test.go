package services_test

import (
	"context"
	"testing"

	"github.com/vmos0/cloud-mail/internal/apperrors"
	"github.com/vmos0/cloud-mail/internal/core/domain"
	"github.com/vmos0/cloud-mail/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type OAuthServiceTestSuite struct {
	suite.Suite
	mockGateway   *MockProviderGateway
	mockResolver  *MockAccountResolver
	mockOAuthRepo *MockOAuthRepository
	mockUserSvc   *MockUserService
	mockSession   *MockSessionService
	service       *services.OAuthService
}

func (suite *OAuthServiceTestSuite) SetupTest() {
	suite.mockGateway = new(MockProviderGateway)
	suite.mockResolver = new(MockAccountResolver)
	suite.mockOAuthRepo = new(MockOAuthRepository)
	suite.mockUserSvc = new(MockUserService)
	suite.mockSession = new(MockSessionService)
	suite.service = services.NewOAuthService(
		suite.mockGateway,
		suite.mockResolver,
		suite.mockOAuthRepo,
		suite.mockUserSvc,
		suite.mockSession,
	)
}

// --- Login ---

func (suite *OAuthServiceTestSuite) TestLogin_ResolvedAccountGetsToken() {
	ctx := context.Background()
	identity := &domain.ExternalIdentity{Provider: domain.ProviderGitHub, ExternalUserID: "42", Username: "octocat"}
	row := &domain.OAuthIdentity{OAuthID: 1, Provider: domain.ProviderGitHub, ExternalUserID: "42", UserID: 7}
	user := &domain.User{UserID: 7, Email: "octocat@mail.test"}

	suite.mockGateway.On("ExchangeAndFetch", ctx, domain.ProviderGitHub, "abc").Return(identity, nil).Once()
	suite.mockResolver.On("Resolve", ctx, *identity).Return(&domain.Resolution{Identity: row, User: user}, nil).Once()
	suite.mockSession.On("IssueSession", ctx, "octocat@mail.test").Return("jwt-token", nil).Once()

	result, err := suite.service.Login(ctx, domain.ProviderGitHub, "abc")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("jwt-token", result.Token)
	suite.Equal(row, result.Identity)
	suite.Empty(result.DefaultEmail)
	suite.Empty(result.Suggestions)

	suite.mockGateway.AssertExpectations(suite.T())
	suite.mockResolver.AssertExpectations(suite.T())
	suite.mockSession.AssertExpectations(suite.T())
}

func (suite *OAuthServiceTestSuite) TestLogin_UnresolvedReturnsRegistrationData() {
	ctx := context.Background()
	identity := &domain.ExternalIdentity{Provider: domain.ProviderGitHub, ExternalUserID: "42", Username: "octocat"}
	row := &domain.OAuthIdentity{OAuthID: 1, Provider: domain.ProviderGitHub, ExternalUserID: "42", UserID: domain.NoUser}
	resolution := &domain.Resolution{
		Identity:       row,
		DefaultEmail:   "octocat@mail.test",
		EmailAvailable: true,
		Suggestions:    []string{},
	}

	suite.mockGateway.On("ExchangeAndFetch", ctx, domain.ProviderGitHub, "abc").Return(identity, nil).Once()
	suite.mockResolver.On("Resolve", ctx, *identity).Return(resolution, nil).Once()

	result, err := suite.service.Login(ctx, domain.ProviderGitHub, "abc")

	suite.Require().NoError(err)
	suite.Empty(result.Token)
	suite.Equal("octocat@mail.test", result.DefaultEmail)
	suite.True(result.EmailAvailable)

	// No account resolved means no session.
	suite.mockSession.AssertNotCalled(suite.T(), "IssueSession", mock.Anything, mock.Anything)
}

func (suite *OAuthServiceTestSuite) TestLogin_ExchangeRejected() {
	ctx := context.Background()

	suite.mockGateway.On("ExchangeAndFetch", ctx, domain.ProviderGitHub, "bad").Return(nil, apperrors.ErrUpstreamAuth).Once()

	result, err := suite.service.Login(ctx, domain.ProviderGitHub, "bad")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUpstreamAuth)
	suite.mockResolver.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything)
}

func (suite *OAuthServiceTestSuite) TestLogin_ResolverError() {
	ctx := context.Background()
	identity := &domain.ExternalIdentity{Provider: domain.ProviderGitHub, ExternalUserID: "42", Username: "octocat"}

	suite.mockGateway.On("ExchangeAndFetch", ctx, domain.ProviderGitHub, "abc").Return(identity, nil).Once()
	suite.mockResolver.On("Resolve", ctx, *identity).Return(nil, assert.AnError).Once()

	result, err := suite.service.Login(ctx, domain.ProviderGitHub, "abc")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
}

// --- BindUser ---

func (suite *OAuthServiceTestSuite) TestBindUser_RegistersNewAccount() {
	ctx := context.Background()
	row := &domain.OAuthIdentity{OAuthID: 1, Provider: domain.ProviderGitHub, ExternalUserID: "42", UserID: domain.NoUser}
	created := &domain.User{UserID: 11, Email: "octocat@mail.test"}

	suite.mockOAuthRepo.On("FindIdentityByID", ctx, int64(1)).Return(row, nil).Once()
	suite.mockUserSvc.On("GetUserByEmail", ctx, "octocat@mail.test", true).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserSvc.On("RegisterUser", ctx, "octocat@mail.test", mock.AnythingOfType("string"), "reg-code").Return(created, nil).Once()
	suite.mockOAuthRepo.On("SetIdentityUser", ctx, int64(1), int64(11)).Return(nil).Once()
	suite.mockSession.On("IssueSession", ctx, "octocat@mail.test").Return("jwt-token", nil).Once()

	result, err := suite.service.BindUser(ctx, 1, "octocat@mail.test", "reg-code")

	suite.Require().NoError(err)
	suite.Equal("jwt-token", result.Token)
	suite.Equal(int64(11), result.Identity.UserID)

	suite.mockOAuthRepo.AssertExpectations(suite.T())
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *OAuthServiceTestSuite) TestBindUser_LinksExistingLiveAccount() {
	ctx := context.Background()
	row := &domain.OAuthIdentity{OAuthID: 1, Provider: domain.ProviderGitHub, ExternalUserID: "42", UserID: domain.NoUser}
	existing := &domain.User{UserID: 11, Email: "octocat@mail.test"}

	suite.mockOAuthRepo.On("FindIdentityByID", ctx, int64(1)).Return(row, nil).Once()
	suite.mockUserSvc.On("GetUserByEmail", ctx, "octocat@mail.test", true).Return(existing, nil).Once()
	suite.mockOAuthRepo.On("SetIdentityUser", ctx, int64(1), int64(11)).Return(nil).Once()
	suite.mockSession.On("IssueSession", ctx, "octocat@mail.test").Return("jwt-token", nil).Once()

	result, err := suite.service.BindUser(ctx, 1, "octocat@mail.test", "")

	suite.Require().NoError(err)
	suite.Equal("jwt-token", result.Token)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OAuthServiceTestSuite) TestBindUser_AlreadyBoundToLiveAccount() {
	ctx := context.Background()
	row := &domain.OAuthIdentity{OAuthID: 1, Provider: domain.ProviderGitHub, ExternalUserID: "42", UserID: 5}
	current := &domain.User{UserID: 5, Email: "held@mail.test"}

	suite.mockOAuthRepo.On("FindIdentityByID", ctx, int64(1)).Return(row, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, int64(5), true).Return(current, nil).Once()

	result, err := suite.service.BindUser(ctx, 1, "other@mail.test", "")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrAlreadyBound)
	suite.mockOAuthRepo.AssertNotCalled(suite.T(), "SetIdentityUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OAuthServiceTestSuite) TestBindUser_ReboundAfterAccountSoftDeleted() {
	ctx := context.Background()
	row := &domain.OAuthIdentity{OAuthID: 1, Provider: domain.ProviderGitHub, ExternalUserID: "42", UserID: 5}
	deleted := &domain.User{UserID: 5, Email: "old@mail.test", IsDel: true}
	target := &domain.User{UserID: 11, Email: "new@mail.test"}

	suite.mockOAuthRepo.On("FindIdentityByID", ctx, int64(1)).Return(row, nil).Once()
	// The bound account was soft-deleted; the identity may move on.
	suite.mockUserSvc.On("GetUserByID", ctx, int64(5), true).Return(deleted, nil).Once()
	suite.mockUserSvc.On("GetUserByEmail", ctx, "new@mail.test", true).Return(target, nil).Once()
	suite.mockOAuthRepo.On("SetIdentityUser", ctx, int64(1), int64(11)).Return(nil).Once()
	suite.mockSession.On("IssueSession", ctx, "new@mail.test").Return("jwt-token", nil).Once()

	result, err := suite.service.BindUser(ctx, 1, "new@mail.test", "")

	suite.Require().NoError(err)
	suite.Equal(int64(11), result.Identity.UserID)
}

func (suite *OAuthServiceTestSuite) TestBindUser_DeletedEmailRejected() {
	ctx := context.Background()
	row := &domain.OAuthIdentity{OAuthID: 1, Provider: domain.ProviderGitHub, ExternalUserID: "42", UserID: domain.NoUser}
	deleted := &domain.User{UserID: 5, Email: "gone@mail.test", IsDel: true}

	suite.mockOAuthRepo.On("FindIdentityByID", ctx, int64(1)).Return(row, nil).Once()
	suite.mockUserSvc.On("GetUserByEmail", ctx, "gone@mail.test", true).Return(deleted, nil).Once()

	result, err := suite.service.BindUser(ctx, 1, "gone@mail.test", "")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDeletedEmail)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OAuthServiceTestSuite) TestBindUser_IdentityNotFound() {
	ctx := context.Background()

	suite.mockOAuthRepo.On("FindIdentityByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.BindUser(ctx, 99, "octocat@mail.test", "")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Unbind ---

func (suite *OAuthServiceTestSuite) TestUnbind_Success() {
	ctx := context.Background()

	suite.mockOAuthRepo.On("DeleteByProviderAndUser", ctx, domain.ProviderGitHub, int64(7)).Return(nil).Once()

	err := suite.service.Unbind(ctx, domain.ProviderGitHub, 7)

	suite.Require().NoError(err)
	suite.mockOAuthRepo.AssertExpectations(suite.T())
}

func (suite *OAuthServiceTestSuite) TestUnbind_UnknownProvider() {
	ctx := context.Background()

	err := suite.service.Unbind(ctx, domain.Provider("gitlab"), 7)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOAuthRepo.AssertNotCalled(suite.T(), "DeleteByProviderAndUser", mock.Anything, mock.Anything, mock.Anything)
}

// --- SweepOrphans ---

func (suite *OAuthServiceTestSuite) TestSweepOrphans() {
	ctx := context.Background()

	suite.mockOAuthRepo.On("DeleteOrphans", ctx).Return(int64(4), nil).Once()

	removed, err := suite.service.SweepOrphans(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(4), removed)
}

func (suite *OAuthServiceTestSuite) TestSweepOrphans_RepoError() {
	ctx := context.Background()

	suite.mockOAuthRepo.On("DeleteOrphans", ctx).Return(int64(0), assert.AnError).Once()

	removed, err := suite.service.SweepOrphans(ctx)

	suite.Require().Error(err)
	suite.Zero(removed)
	suite.ErrorIs(err, assert.AnError)
}

// --- Run Test Suite ---

func TestOAuthService(t *testing.T) {
	suite.Run(t, new(OAuthServiceTestSuite))
}
