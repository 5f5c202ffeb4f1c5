// ABOUTME: Mappers for converting population domain models to API DTOs
// ABOUTME: Keeps the wire shapes independent of the upstream payload types

package mappers

import (
	"countrystats-api/api/dto/responses"
	"countrystats-api/core/domain"
)

// ChartContentType is the MIME type of every rendered chart
const ChartContentType = "image/png"

// ToPopulationCountResponse converts a domain PopulationCount
func ToPopulationCountResponse(count domain.PopulationCount) responses.PopulationCountResponse {
	return responses.PopulationCountResponse{
		Year:        count.Year.Ptr(),
		Value:       count.Value.Ptr(),
		Sex:         count.Sex,
		Reliability: count.Reliability,
	}
}

// ToCityResponse converts a domain City to a CityResponse DTO
func ToCityResponse(city domain.City) responses.CityResponse {
	counts := make([]responses.PopulationCountResponse, 0, len(city.PopulationCounts))
	for _, c := range city.PopulationCounts {
		counts = append(counts, ToPopulationCountResponse(c))
	}

	return responses.CityResponse{
		City:             city.City,
		Country:          city.Country,
		PopulationCounts: counts,
	}
}

// ToCityResponses converts multiple domain Cities, never returning nil
func ToCityResponses(cities []domain.City) []responses.CityResponse {
	out := make([]responses.CityResponse, 0, len(cities))
	for _, c := range cities {
		out = append(out, ToCityResponse(c))
	}
	return out
}

// ToCountryInfoResponse converts domain CountryInfo
func ToCountryInfoResponse(info *domain.CountryInfo) *responses.CountryInfoResponse {
	if info == nil {
		return nil
	}

	return &responses.CountryInfoResponse{
		Name:     info.Name,
		Capital:  info.Capital,
		Currency: info.Currency,
		DialCode: info.DialCode,
		Flag:     info.Flag,
	}
}

// ToCityPopulationResponses converts a ranked series
func ToCityPopulationResponses(series []domain.CityPopulation) []responses.CityPopulationResponse {
	out := make([]responses.CityPopulationResponse, 0, len(series))
	for _, e := range series {
		out = append(out, responses.CityPopulationResponse{City: e.City, Population: e.Population})
	}
	return out
}

// ToChartResponse converts a rendered chart to its inline form
func ToChartResponse(chart *domain.Chart) *responses.ChartResponse {
	if chart == nil || len(chart.PNG) == 0 {
		return nil
	}

	return &responses.ChartResponse{
		Title:       chart.Title,
		ContentType: ChartContentType,
		Data:        chart.Base64(),
	}
}
