package services

import (
	"context"
	"fmt"
	"strconv"

	portsrepo "github.com/vmos0/cloud-mail/internal/core/ports/repositories"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
	"github.com/vmos0/cloud-mail/internal/platform/config"
	"github.com/vmos0/cloud-mail/internal/utils"
)

// sessionService mints JWT sessions for resolved accounts. Sessions are
// stateless; nothing is stored server-side.
type sessionService struct {
	cfg      *config.Config
	userRepo portsrepo.UserReader
}

// NewSessionService creates a new sessionService.
func NewSessionService(cfg *config.Config, userRepo portsrepo.UserReader) portssvc.SessionSvcFacade {
	return &sessionService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// IssueSession mints a token for the live account holding email. Callers only
// invoke this once an account is definitively resolved, so a missing or
// deleted account here is a failure, not a prompt to register.
func (s *sessionService) IssueSession(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email, false)
	if err != nil {
		return "", fmt.Errorf("failed to load account for session: %w", err)
	}

	token, err := utils.GenerateJWT(
		strconv.FormatInt(user.UserID, 10),
		s.cfg.JWTSecret,
		s.cfg.JWTExpiryDuration,
		s.cfg.JWTIssuer,
	)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}
