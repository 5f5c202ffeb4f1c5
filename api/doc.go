// Package api provides the HTTP layer of the Country Stats API.
// It uses Huma on a chi router for OpenAPI documentation and request validation.
//
// # Architecture
//
// - server.go: router, middleware stack and Huma configuration
// - handlers/: HTTP handlers and domain error translation
// - dto/: response shapes and mappers from domain models
// - middleware/: request logging and per-client rate limiting
//
// The OpenAPI document is served at /openapi.json and the interactive
// documentation at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPI(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewCountryHandler(cities, countries, summary, flags, logger).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format Huma produces:
//
//	{
//	    "status": 502,
//	    "title": "Bad Gateway",
//	    "detail": "Unable to fetch cities at this time."
//	}
//
// Upstream failures never expose the upstream response body to clients.
package api
