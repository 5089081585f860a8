package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/vmos0/cloud-mail/internal/apperrors"
	"github.com/vmos0/cloud-mail/internal/core/domain"
	"github.com/vmos0/cloud-mail/internal/core/services"
	"github.com/vmos0/cloud-mail/internal/platform/config"
	"github.com/vmos0/cloud-mail/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "cloud-mail-test",
	}
}

func TestIssueSession_Success(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	svc := services.NewSessionService(sessionTestConfig(), mockUserRepo)

	user := &domain.User{UserID: 12, Email: "octocat@mail.test"}
	// Sessions only ever cover live accounts.
	mockUserRepo.On("FindUserByEmail", ctx, "octocat@mail.test", false).Return(user, nil).Once()

	token, err := svc.IssueSession(ctx, "octocat@mail.test")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "12", claims.Subject)
	assert.Equal(t, "cloud-mail-test", claims.Issuer)

	mockUserRepo.AssertExpectations(t)
}

func TestIssueSession_AccountMissing(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	svc := services.NewSessionService(sessionTestConfig(), mockUserRepo)

	mockUserRepo.On("FindUserByEmail", ctx, "gone@mail.test", false).Return(nil, apperrors.ErrNotFound).Once()

	token, err := svc.IssueSession(ctx, "gone@mail.test")

	require.Error(t, err)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
