package services

import (
	"github.com/vmos0/cloud-mail/internal/core/domain"
	portsrepo "github.com/vmos0/cloud-mail/internal/core/ports/repositories"
	portssvc "github.com/vmos0/cloud-mail/internal/core/ports/services"
	"github.com/vmos0/cloud-mail/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Session = NewSessionService(cfg, repos.UserRepo)
	container.Suggester = NewEmailSuggester(repos.UserRepo, cfg.MailDomain)

	container.ProviderGateway = NewProviderGateway(cfg.GitHub, cfg.LinuxDo)

	reuseProviders := map[domain.Provider]bool{
		domain.ProviderGitHub:  cfg.GitHub.CrossProviderReuse,
		domain.ProviderLinuxDo: cfg.LinuxDo.CrossProviderReuse,
	}
	container.Resolver = NewAccountResolver(repos.OAuthRepo, repos.UserRepo, container.Suggester, reuseProviders)

	container.OAuth = NewOAuthService(
		container.ProviderGateway,
		container.Resolver,
		repos.OAuthRepo,
		container.User,
		container.Session,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.OAuthSvcFacade    = (*OAuthService)(nil)
	_ portssvc.UserSvcFacade     = (*UserService)(nil)
	_ portssvc.SessionSvcFacade  = (*sessionService)(nil)
	_ portssvc.EmailSuggesterSvc = (*emailSuggester)(nil)
)
