// ABOUTME: Country service looks up general country facts from the upstream
// ABOUTME: Matches the requested country name case-insensitively

package country

import (
	"context"
	"strings"

	"countrystats-api/core/domain"
	"countrystats-api/core/errors"
	"countrystats-api/core/interfaces"
	"countrystats-api/core/upstream"
)

// InfoEndpoint lists all countries with the fields CountryInfo carries
const InfoEndpoint = "countries/info?returns=currency,flag,dialCode,capital"

// Service answers country information queries
type Service struct {
	client *upstream.Client
	logger interfaces.Logger
}

// NewService creates a new country service instance
func NewService(client *upstream.Client, deps interfaces.Dependencies) *Service {
	return &Service{
		client: client,
		logger: deps.Logger,
	}
}

// CountryInfo returns the first upstream entry whose name equals country,
// ignoring case only. A missing country is a NotFoundError.
func (s *Service) CountryInfo(ctx context.Context, country string) (*domain.CountryInfo, error) {
	if strings.TrimSpace(country) == "" {
		return nil, &errors.ValidationError{Field: "country", Message: "country is required"}
	}

	env, err := upstream.Get[domain.Envelope[domain.CountryInfo]](ctx, s.client, InfoEndpoint, upstream.JSONHeaders()...)
	if err != nil {
		return nil, err
	}
	if env.Error && s.logger != nil {
		s.logger.Warn("Upstream flagged country response as error", map[string]interface{}{
			"message": env.Message,
		})
	}

	for _, info := range env.Data {
		if strings.EqualFold(info.Name, country) {
			found := info
			return &found, nil
		}
	}

	return nil, &errors.NotFoundError{Resource: "country", ID: country}
}
