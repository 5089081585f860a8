package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/vmos0/cloud-mail/internal/apperrors"
	"github.com/vmos0/cloud-mail/internal/core/domain"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
	"github.com/vmos0/cloud-mail/internal/platform/config"
	"golang.org/x/oauth2"
)

// normalizeFunc maps one provider's raw profile body into the canonical
// external identity. Each provider gets an explicit mapping; fields are never
// carried over implicitly.
type normalizeFunc func(body []byte) (*domain.ExternalIdentity, error)

// providerSpec bundles everything the gateway needs for one provider.
type providerSpec struct {
	oauth      *oauth2.Config
	profileURL string
	normalize  normalizeFunc
}

// providerGatewayService exchanges authorization codes and fetches profiles.
// It performs exactly two outbound calls per login and holds no state beyond
// its per-provider configuration.
type providerGatewayService struct {
	specs map[domain.Provider]providerSpec
}

// NewProviderGateway creates the gateway for the two supported providers.
// Credentials and endpoint URLs come in explicitly; nothing is read from
// process-wide state.
func NewProviderGateway(github config.ProviderConfig, linuxDo config.ProviderConfig) portssvc.ProviderGatewaySvc {
	return &providerGatewayService{
		specs: map[domain.Provider]providerSpec{
			domain.ProviderGitHub: {
				oauth:      oauthConfig(github),
				profileURL: github.ProfileURL,
				normalize:  normalizeGitHub,
			},
			domain.ProviderLinuxDo: {
				oauth:      oauthConfig(linuxDo),
				profileURL: linuxDo.ProfileURL,
				normalize:  normalizeLinuxDo,
			},
		},
	}
}

var _ portssvc.ProviderGatewaySvc = (*providerGatewayService)(nil)

func oauthConfig(pc config.ProviderConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     pc.ClientID,
		ClientSecret: pc.ClientSecret,
		RedirectURL:  pc.RedirectURL,
		Endpoint: oauth2.Endpoint{
			TokenURL:  pc.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func (s *providerGatewayService) ExchangeAndFetch(ctx context.Context, provider domain.Provider, code string) (*domain.ExternalIdentity, error) {
	spec, ok := s.specs[provider]
	if !ok {
		return nil, fmt.Errorf("%w: unknown oauth provider %q", apperrors.ErrValidation, provider)
	}

	token, err := spec.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstreamAuth, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spec.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstreamProfile, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s", apperrors.ErrUpstreamProfile, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstreamProfile, err)
	}

	identity, err := spec.normalize(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstreamProfile, err)
	}
	return identity, nil
}

type githubProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func normalizeGitHub(body []byte) (*domain.ExternalIdentity, error) {
	var p githubProfile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to decode github profile: %w", err)
	}
	displayName := p.Name
	if displayName == "" {
		displayName = p.Login
	}
	return &domain.ExternalIdentity{
		Provider:       domain.ProviderGitHub,
		ExternalUserID: strconv.FormatInt(p.ID, 10),
		Username:       p.Login,
		DisplayName:    displayName,
		AvatarURL:      p.AvatarURL,
		TrustLevel:     0,
		Active:         false,
		Silenced:       false,
	}, nil
}

type linuxDoProfile struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url"`
	Active     bool   `json:"active"`
	TrustLevel int    `json:"trust_level"`
}

func normalizeLinuxDo(body []byte) (*domain.ExternalIdentity, error) {
	var p linuxDoProfile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to decode linuxdo profile: %w", err)
	}
	displayName := p.Name
	if displayName == "" {
		displayName = p.Username
	}
	// Active is stored as the inverse of the upstream flag and silenced as the
	// raw upstream flag. TODO: confirm with the frontend whether silenced
	// should instead mirror !active before changing this.
	return &domain.ExternalIdentity{
		Provider:       domain.ProviderLinuxDo,
		ExternalUserID: strconv.FormatInt(p.ID, 10),
		Username:       p.Username,
		DisplayName:    displayName,
		AvatarURL:      p.AvatarURL,
		TrustLevel:     p.TrustLevel,
		Active:         !p.Active,
		Silenced:       p.Active,
	}, nil
}
