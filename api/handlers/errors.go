// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP responses without leaking upstream bodies

package handlers

import (
	"countrystats-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// Messages shown to clients when the upstream cannot serve a request
const (
	CitiesUnavailable  = "Unable to fetch cities at this time."
	CountryUnavailable = "Unable to fetch country information at this time."
)

// toHumaError converts domain errors to Huma HTTP errors. Upstream failures
// get the generic unavailable message; their details only go to the logs.
func toHumaError(err error, unavailable string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.IsTimeout(err):
		return huma.Error504GatewayTimeout(unavailable)
	case errors.IsTransport(err):
		return huma.Error503ServiceUnavailable(unavailable)
	case errors.IsUpstream(err):
		return huma.Error502BadGateway(unavailable)
	default:
		return huma.Error500InternalServerError("Internal server error")
	}
}
