// Package core contains the business logic for the Country Stats API.
// It does not depend on any web framework; everything external is injected
// through the contracts in core/interfaces.
//
// The core package is organized into several sub-packages:
//
// - domain: Population models, tolerant numeric decoding, sort orders and charts
// - upstream: Typed client for the population data service
// - city: Filtering and sorting of cities per country
// - country: Country facts lookup
// - summary: Ranking of the biggest cities and chart rendering
// - errors: Error taxonomy shared by the client, services and API
// - interfaces: Contracts for external dependencies (HTTP, logger, metrics, charts)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: standard.NewStandardHTTPClient(10 * time.Second),
//	    Logger:     logger,
//	}
//
//	client := upstream.NewClient(config.DefaultUpstreamBaseURL, 10*time.Second, deps)
//	cities := city.NewService(client, deps)
//
//	list, err := cities.CitiesByCountry(ctx, "Switzerland", domain.SortPopulationDesc)
//	if errors.IsServer(err) {
//	    // the upstream failed, the request may be retried later
//	}
package core
