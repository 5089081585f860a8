package repositories

// RepositoryProvider aggregates all repositories the service layer needs.
type RepositoryProvider struct {
	UserRepo  UserRepositoryFacade
	OAuthRepo OAuthIdentityRepositoryFacade
}
