package services

// ServiceContainer aggregates all services handed to the HTTP layer.
type ServiceContainer struct {
	User            UserSvcFacade
	Session         SessionSvcFacade
	ProviderGateway ProviderGatewaySvc
	Resolver        AccountResolverSvc
	Suggester       EmailSuggesterSvc
	OAuth           OAuthSvcFacade
}
