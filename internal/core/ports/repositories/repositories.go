package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PreferenceRepo PreferenceRepositoryFacade
	RateCache      RateCacheFacade // optional, nil when no cache is configured
	RateProvider   RateProvider
}
