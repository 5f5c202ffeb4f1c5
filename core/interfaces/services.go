// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"countrystats-api/core/domain"
)

// CityService answers city population queries
type CityService interface {
	CitiesByCountry(ctx context.Context, country string, order domain.SortOrder) ([]domain.City, error)
}

// CountryService answers country information queries
type CountryService interface {
	CountryInfo(ctx context.Context, country string) (*domain.CountryInfo, error)
}

// SummaryService reduces city lists to a ranked series and renders it
type SummaryService interface {
	TopCities(cities []domain.City, n int) []domain.CityPopulation
	Chart(ctx context.Context, cities []domain.City) (*domain.Chart, error)
}

// ChartRenderer draws a labeled numeric series and returns the encoded image
type ChartRenderer interface {
	Render(ctx context.Context, title string, series []domain.CityPopulation) ([]byte, error)
}
