// ABOUTME: Country statistics handlers for the Huma API
// ABOUTME: Serves city lists, country facts, top-city rankings and population charts

package handlers

import (
	"context"
	"net/http"
	"sync"

	"countrystats-api/api/dto/mappers"
	"countrystats-api/api/dto/responses"
	"countrystats-api/core/domain"
	"countrystats-api/core/errors"
	"countrystats-api/core/interfaces"
	"countrystats-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// CountryHandler handles country and city HTTP requests
type CountryHandler struct {
	cities    interfaces.CityService
	countries interfaces.CountryService
	summary   interfaces.SummaryService
	flags     featureflags.Manager
	logger    interfaces.Logger
}

// NewCountryHandler creates a new country handler. A nil flag manager
// enables every optional feature. A nil summary service leaves charts and
// rankings out: those routes answer 404.
func NewCountryHandler(
	cities interfaces.CityService,
	countries interfaces.CountryService,
	summary interfaces.SummaryService,
	flags featureflags.Manager,
	logger interfaces.Logger,
) *CountryHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	return &CountryHandler{
		cities:    cities,
		countries: countries,
		summary:   summary,
		flags:     flags,
		logger:    logger,
	}
}

// RegisterRoutes registers all country-related routes
func (h *CountryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getCountryStats",
		Method:      http.MethodGet,
		Path:        "/country-stats",
		Summary:     "Get country statistics",
		Description: "Returns country facts, the country's cities in the requested order and a chart of its biggest cities",
		Tags:        []string{"Countries"},
	}, h.GetCountryStats)

	huma.Register(api, huma.Operation{
		OperationID: "listCities",
		Method:      http.MethodGet,
		Path:        "/cities",
		Summary:     "List cities of a country",
		Description: "Returns the cities of a country with their population history",
		Tags:        []string{"Cities"},
	}, h.ListCities)

	huma.Register(api, huma.Operation{
		OperationID: "getCountryInfo",
		Method:      http.MethodGet,
		Path:        "/countries/{country}/info",
		Summary:     "Get country information",
		Description: "Returns capital, currency, dial code and flag of a country",
		Tags:        []string{"Countries"},
	}, h.GetCountryInfo)

	huma.Register(api, huma.Operation{
		OperationID: "getTopCities",
		Method:      http.MethodGet,
		Path:        "/countries/{country}/top-cities",
		Summary:     "Get the biggest cities of a country",
		Description: "Ranks the cities of a country by their most relevant population count",
		Tags:        []string{"Cities"},
	}, h.GetTopCities)

	huma.Register(api, huma.Operation{
		OperationID: "getCityChart",
		Method:      http.MethodGet,
		Path:        "/countries/{country}/chart.png",
		Summary:     "Render a population chart",
		Description: "Renders a PNG bar chart of the biggest cities of a country",
		Tags:        []string{"Cities"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PNG bar chart",
				Content:     map[string]*huma.MediaType{mappers.ChartContentType: {}},
			},
		},
	}, h.GetCityChart)
}

// CountryStatsInput defines the input for the GetCountryStats operation
type CountryStatsInput struct {
	Country   string `query:"country" required:"true" minLength:"1" doc:"Country name, matched case-insensitively"`
	SortOrder string `query:"sortOrder" default:"nameAsc" doc:"One of nameAsc, nameDesc, populationAsc, populationDesc, yearAsc, yearDesc"`
}

// CountryStatsOutput defines the output for the GetCountryStats operation
type CountryStatsOutput struct {
	Body responses.CountryStatsResponse
}

// GetCountryStats handles the GET /country-stats endpoint. A country the
// upstream has no facts for still returns its cities, with null countryInfo.
func (h *CountryHandler) GetCountryStats(ctx context.Context, input *CountryStatsInput) (*CountryStatsOutput, error) {
	order, err := domain.ParseSortOrder(input.SortOrder)
	if err != nil {
		return nil, toHumaError(err, CitiesUnavailable)
	}

	// The two upstream lookups are independent
	var (
		wg        sync.WaitGroup
		info      *domain.CountryInfo
		infoErr   error
		cities    []domain.City
		citiesErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		info, infoErr = h.countries.CountryInfo(ctx, input.Country)
	}()
	go func() {
		defer wg.Done()
		cities, citiesErr = h.cities.CitiesByCountry(ctx, input.Country, order)
	}()
	wg.Wait()

	if infoErr != nil && !errors.IsNotFound(infoErr) {
		h.logFailure("Country info lookup failed", input.Country, infoErr)
		return nil, toHumaError(infoErr, CitiesUnavailable)
	}
	if citiesErr != nil {
		h.logFailure("City lookup failed", input.Country, citiesErr)
		return nil, toHumaError(citiesErr, CitiesUnavailable)
	}

	resp := &CountryStatsOutput{
		Body: responses.CountryStatsResponse{
			Country:     input.Country,
			CountryInfo: mappers.ToCountryInfoResponse(info),
			Cities:      mappers.ToCityResponses(cities),
		},
	}

	if h.flags.IsEnabled(ctx, featureflags.ChartEnabled) && h.summary != nil {
		chart, err := h.summary.Chart(ctx, cities)
		switch {
		case err == nil:
			resp.Body.Chart = mappers.ToChartResponse(chart)
		case errors.IsValidation(err):
			// nothing to draw
		default:
			h.logFailure("Chart rendering failed", input.Country, err)
		}
	}

	return resp, nil
}

// ListCitiesInput defines the input for the ListCities operation
type ListCitiesInput struct {
	Country   string `query:"country" required:"true" minLength:"1" doc:"Country name, matched case-insensitively"`
	SortOrder string `query:"sortOrder" doc:"Sort order; upstream order when omitted"`
}

// ListCitiesOutput defines the output for the ListCities operation
type ListCitiesOutput struct {
	Body responses.CitiesResponse
}

// ListCities handles the GET /cities endpoint
func (h *CountryHandler) ListCities(ctx context.Context, input *ListCitiesInput) (*ListCitiesOutput, error) {
	order, err := domain.ParseSortOrder(input.SortOrder)
	if err != nil {
		return nil, toHumaError(err, CitiesUnavailable)
	}

	cities, err := h.cities.CitiesByCountry(ctx, input.Country, order)
	if err != nil {
		h.logFailure("City lookup failed", input.Country, err)
		return nil, toHumaError(err, CitiesUnavailable)
	}

	return &ListCitiesOutput{
		Body: responses.CitiesResponse{
			Country:   input.Country,
			SortOrder: string(order),
			Count:     len(cities),
			Cities:    mappers.ToCityResponses(cities),
		},
	}, nil
}

// CountryPathInput identifies a country by path parameter
type CountryPathInput struct {
	Country string `path:"country" minLength:"1" doc:"Country name, matched case-insensitively"`
}

// CountryInfoOutput defines the output for the GetCountryInfo operation
type CountryInfoOutput struct {
	Body *responses.CountryInfoResponse
}

// GetCountryInfo handles the GET /countries/{country}/info endpoint
func (h *CountryHandler) GetCountryInfo(ctx context.Context, input *CountryPathInput) (*CountryInfoOutput, error) {
	info, err := h.countries.CountryInfo(ctx, input.Country)
	if err != nil {
		if !errors.IsNotFound(err) {
			h.logFailure("Country info lookup failed", input.Country, err)
		}
		return nil, toHumaError(err, CountryUnavailable)
	}

	return &CountryInfoOutput{Body: mappers.ToCountryInfoResponse(info)}, nil
}

// TopCitiesInput defines the input for the GetTopCities operation
type TopCitiesInput struct {
	Country string `path:"country" minLength:"1" doc:"Country name, matched case-insensitively"`
	N       int    `query:"n" minimum:"0" maximum:"100" doc:"Number of cities, the configured default when 0 or omitted"`
}

// TopCitiesOutput defines the output for the GetTopCities operation
type TopCitiesOutput struct {
	Body responses.TopCitiesResponse
}

// GetTopCities handles the GET /countries/{country}/top-cities endpoint
func (h *CountryHandler) GetTopCities(ctx context.Context, input *TopCitiesInput) (*TopCitiesOutput, error) {
	if h.summary == nil {
		return nil, huma.Error404NotFound("city rankings are not available")
	}

	cities, err := h.cities.CitiesByCountry(ctx, input.Country, domain.SortNone)
	if err != nil {
		h.logFailure("City lookup failed", input.Country, err)
		return nil, toHumaError(err, CitiesUnavailable)
	}

	return &TopCitiesOutput{
		Body: responses.TopCitiesResponse{
			Country: input.Country,
			Cities:  mappers.ToCityPopulationResponses(h.summary.TopCities(cities, input.N)),
		},
	}, nil
}

// ChartOutput is a raw PNG response
type ChartOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// GetCityChart handles the GET /countries/{country}/chart.png endpoint
func (h *CountryHandler) GetCityChart(ctx context.Context, input *CountryPathInput) (*ChartOutput, error) {
	if h.summary == nil || !h.flags.IsEnabled(ctx, featureflags.ChartEnabled) {
		return nil, huma.Error404NotFound("chart rendering is disabled")
	}

	cities, err := h.cities.CitiesByCountry(ctx, input.Country, domain.SortNone)
	if err != nil {
		h.logFailure("City lookup failed", input.Country, err)
		return nil, toHumaError(err, CitiesUnavailable)
	}

	chart, err := h.summary.Chart(ctx, cities)
	if err != nil {
		if errors.IsValidation(err) {
			return nil, huma.Error404NotFound("no population data to chart for " + input.Country)
		}
		h.logFailure("Chart rendering failed", input.Country, err)
		return nil, huma.Error500InternalServerError("Unable to render chart at this time.")
	}

	return &ChartOutput{
		ContentType: mappers.ChartContentType,
		Body:        chart.PNG,
	}, nil
}

func (h *CountryHandler) logFailure(msg, country string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Error(msg, map[string]interface{}{
		"country": country,
		"error":   err.Error(),
	})
}
