// ABOUTME: City service fetches the upstream city population dataset and narrows it to one country
// ABOUTME: Applies case-insensitive country filtering and the six named sort orders

package city

import (
	"context"
	"strings"

	"countrystats-api/core/domain"
	"countrystats-api/core/errors"
	"countrystats-api/core/interfaces"
	"countrystats-api/core/upstream"
)

// CitiesEndpoint returns every city with its population history
const CitiesEndpoint = "countries/population/cities/"

// Service answers city queries against the upstream
type Service struct {
	client *upstream.Client
	logger interfaces.Logger
}

// NewService creates a new city service instance
func NewService(client *upstream.Client, deps interfaces.Dependencies) *Service {
	return &Service{
		client: client,
		logger: deps.Logger,
	}
}

// CitiesByCountry fetches all cities, keeps those in country and sorts them
// by order. Upstream errors are returned unchanged.
func (s *Service) CitiesByCountry(ctx context.Context, country string, order domain.SortOrder) ([]domain.City, error) {
	if strings.TrimSpace(country) == "" {
		return nil, &errors.ValidationError{Field: "country", Message: "country is required"}
	}
	if !order.Valid() {
		return nil, &errors.ValidationError{Field: "sortOrder", Message: "unknown sort order " + string(order)}
	}

	env, err := upstream.Get[domain.Envelope[domain.City]](ctx, s.client, CitiesEndpoint, upstream.JSONHeaders()...)
	if err != nil {
		return nil, err
	}
	if env.Error {
		s.warn("Upstream flagged city response as error", map[string]interface{}{
			"message": env.Message,
		})
	}

	cities := SortCities(FilterByCountry(env.Data, country), order)

	s.debug("Cities filtered", map[string]interface{}{
		"country":    country,
		"sort_order": string(order),
		"total":      len(env.Data),
		"matched":    len(cities),
	})

	return cities, nil
}

func (s *Service) debug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}

func (s *Service) warn(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, fields)
	}
}
