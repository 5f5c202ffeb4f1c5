// ABOUTME: Summary service ranks a country's cities by population and charts the leaders
// ABOUTME: Rendering itself is delegated to an injected ChartRenderer

package summary

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"countrystats-api/core/domain"
	"countrystats-api/core/errors"
	"countrystats-api/core/interfaces"
)

const (
	// DefaultTopN is used when no positive count is requested
	DefaultTopN = 5

	// ChartTitle labels every rendered summary chart
	ChartTitle = "Biggest Cities"
)

// Service produces population summaries
type Service struct {
	renderer interfaces.ChartRenderer
	topN     int
	logger   interfaces.Logger
}

// NewService creates a summary service. A non-positive topN selects DefaultTopN.
func NewService(renderer interfaces.ChartRenderer, topN int, deps interfaces.Dependencies) *Service {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Service{
		renderer: renderer,
		topN:     topN,
		logger:   deps.Logger,
	}
}

// TopCities returns at most n cities ranked by the value of their first
// population count, largest first. Cities without a usable count are skipped
// and a repeated city name keeps only its highest-ranked entry. Ties keep
// input order.
func TopCities(cities []domain.City, n int) []domain.CityPopulation {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]domain.CityPopulation, 0, len(cities))
	for _, c := range cities {
		if pop, ok := c.Population(); ok {
			ranked = append(ranked, domain.CityPopulation{City: c.City, Population: pop})
		}
	}
	slices.SortStableFunc(ranked, func(a, b domain.CityPopulation) int {
		return cmp.Compare(b.Population, a.Population)
	})

	seen := make(map[string]struct{}, n)
	top := make([]domain.CityPopulation, 0, n)
	for _, entry := range ranked {
		if len(top) == n {
			break
		}
		if _, dup := seen[entry.City]; dup {
			continue
		}
		seen[entry.City] = struct{}{}
		top = append(top, entry)
	}
	return top
}

// TopCities ranks cities using n, or the service default when n is not positive
func (s *Service) TopCities(cities []domain.City, n int) []domain.CityPopulation {
	if n <= 0 {
		n = s.topN
	}
	return TopCities(cities, n)
}

// Chart renders the default-sized top list as a bar chart
func (s *Service) Chart(ctx context.Context, cities []domain.City) (*domain.Chart, error) {
	if s.renderer == nil {
		return nil, fmt.Errorf("summary: no chart renderer configured")
	}

	series := TopCities(cities, s.topN)
	if len(series) == 0 {
		return nil, &errors.ValidationError{Field: "cities", Message: "no city has a population count to chart"}
	}

	png, err := s.renderer.Render(ctx, ChartTitle, series)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to render chart", map[string]interface{}{
				"error":  err.Error(),
				"series": len(series),
			})
		}
		return nil, errors.WrapError(err, "failed to render chart")
	}

	return &domain.Chart{
		Title:  ChartTitle,
		Series: series,
		PNG:    png,
	}, nil
}
