package mappers

import (
	"encoding/json"
	"testing"

	"countrystats-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCityResponse_AbsentNumbersAreNull(t *testing.T) {
	city := domain.City{
		City:    "Basel",
		Country: "Switzerland",
		PopulationCounts: []domain.PopulationCount{
			{Year: domain.NumericOf(2019), Value: domain.NumericOf(int64(172258)), Sex: "Both Sexes", Reliability: "Final figure, complete"},
			{Sex: "Male"},
		},
	}

	resp := ToCityResponse(city)
	require.Len(t, resp.PopulationCounts, 2)
	require.NotNil(t, resp.PopulationCounts[0].Year)
	assert.Equal(t, 2019, *resp.PopulationCounts[0].Year)
	assert.Equal(t, int64(172258), *resp.PopulationCounts[0].Value)
	assert.Nil(t, resp.PopulationCounts[1].Year)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"city": "Basel",
		"country": "Switzerland",
		"populationCounts": [
			{"year": 2019, "value": 172258, "sex": "Both Sexes", "reliability": "Final figure, complete"},
			{"year": null, "value": null, "sex": "Male", "reliability": ""}
		]
	}`, string(b))
}

func TestToCityResponses_NeverNil(t *testing.T) {
	resp := ToCityResponses(nil)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)

	b, _ := json.Marshal(ToCityResponse(domain.City{City: "Bern"}))
	assert.Contains(t, string(b), `"populationCounts":[]`)
}

func TestToCountryInfoResponse(t *testing.T) {
	assert.Nil(t, ToCountryInfoResponse(nil))

	resp := ToCountryInfoResponse(&domain.CountryInfo{Name: "Switzerland", Capital: "Bern", Currency: "CHF", DialCode: "+41", Flag: "ch.svg"})
	assert.Equal(t, "+41", resp.DialCode)
	assert.Equal(t, "Bern", resp.Capital)
}

func TestToChartResponse(t *testing.T) {
	assert.Nil(t, ToChartResponse(nil))
	assert.Nil(t, ToChartResponse(&domain.Chart{Title: "empty"}))

	resp := ToChartResponse(&domain.Chart{Title: "Biggest Cities", PNG: []byte("png")})
	require.NotNil(t, resp)
	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, "cG5n", resp.Data)
}

func TestToCityPopulationResponses(t *testing.T) {
	resp := ToCityPopulationResponses([]domain.CityPopulation{{City: "Zurich", Population: 400000}})
	require.Len(t, resp, 1)
	assert.Equal(t, "Zurich", resp[0].City)
	assert.NotNil(t, ToCityPopulationResponses(nil))
}
