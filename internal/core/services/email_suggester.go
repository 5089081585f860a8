package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/vmos0/cloud-mail/internal/apperrors"
	portsrepo "github.com/vmos0/cloud-mail/internal/core/ports/repositories"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
)

// suggestionSuffixes is the fixed, ordered first pass. Keeping it ordered
// makes the first pass fully deterministic for a given account table state.
var suggestionSuffixes = []string{"a", "b", "c", "2025", "123"}

const (
	maxSuggestions    = 3
	maxRandomAttempts = 10
)

// emailSuggester proposes alternative mailbox addresses when the canonical
// one for a username is taken. Availability checks include soft-deleted
// accounts so a deleted mailbox's address is never suggested.
type emailSuggester struct {
	users      portsrepo.UserReader
	mailDomain string
	randInt    func(n int) int
}

// NewEmailSuggester creates a suggester over the given account reader and
// mail domain.
func NewEmailSuggester(users portsrepo.UserReader, mailDomain string) portssvc.EmailSuggesterSvc {
	return &emailSuggester{
		users:      users,
		mailDomain: mailDomain,
		randInt:    rand.IntN,
	}
}

var _ portssvc.EmailSuggesterSvc = (*emailSuggester)(nil)

func (s *emailSuggester) DefaultEmail(username string) string {
	return fmt.Sprintf("%s@%s", username, s.mailDomain)
}

func (s *emailSuggester) Suggest(ctx context.Context, username string) ([]string, error) {
	suggestions := make([]string, 0, maxSuggestions)

	for _, suffix := range suggestionSuffixes {
		if len(suggestions) >= maxSuggestions {
			break
		}
		email := fmt.Sprintf("%s%s@%s", username, suffix, s.mailDomain)
		available, err := s.available(ctx, email)
		if err != nil {
			return nil, err
		}
		if available {
			suggestions = append(suggestions, email)
		}
	}

	// Second pass with random numeric suffixes, bounded so a crowded
	// namespace cannot make the operation run unbounded. Fewer than three
	// results is a legitimate outcome.
	for attempts := 0; attempts < maxRandomAttempts && len(suggestions) < maxSuggestions; attempts++ {
		email := fmt.Sprintf("%s%d@%s", username, s.randInt(1000), s.mailDomain)
		available, err := s.available(ctx, email)
		if err != nil {
			return nil, err
		}
		if available {
			suggestions = append(suggestions, email)
		}
	}

	return suggestions, nil
}

// available distinguishes "no account holds this address" from a genuine
// store failure; only the former counts as available.
func (s *emailSuggester) available(ctx context.Context, email string) (bool, error) {
	_, err := s.users.FindUserByEmail(ctx, email, true)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return true, nil
	}
	return false, fmt.Errorf("failed to check email availability for %s: %w", email, err)
}
