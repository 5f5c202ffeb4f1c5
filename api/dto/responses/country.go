// ABOUTME: Response DTOs for country and city endpoints
// ABOUTME: Absent population figures serialize as null rather than zero

package responses

// PopulationCountResponse is one census figure of a city
type PopulationCountResponse struct {
	Year        *int   `json:"year" doc:"Census year, null when the upstream value was unusable"`
	Value       *int64 `json:"value" doc:"Population count, null when the upstream value was unusable"`
	Sex         string `json:"sex" doc:"Population group the figure covers"`
	Reliability string `json:"reliability" doc:"Upstream reliability note"`
}

// CityResponse represents a city in API responses
type CityResponse struct {
	City             string                    `json:"city" doc:"City name"`
	Country          string                    `json:"country" doc:"Country name as reported upstream"`
	PopulationCounts []PopulationCountResponse `json:"populationCounts" doc:"Population history, first entry is the most relevant"`
}

// CountryInfoResponse represents general country facts
type CountryInfoResponse struct {
	Name     string `json:"name" doc:"Country name"`
	Capital  string `json:"capital" doc:"Capital city"`
	Currency string `json:"currency" doc:"Currency code"`
	DialCode string `json:"dialCode" doc:"International dialing prefix"`
	Flag     string `json:"flag" doc:"Flag image URL"`
}

// CityPopulationResponse is one entry of a ranked population series
type CityPopulationResponse struct {
	City       string `json:"city" doc:"City name"`
	Population int64  `json:"population" doc:"Population used for ranking"`
}

// ChartResponse carries a rendered chart inline
type ChartResponse struct {
	Title       string `json:"title" doc:"Chart title"`
	ContentType string `json:"contentType" doc:"MIME type of the decoded data"`
	Data        string `json:"data" doc:"Base64 encoded image"`
}

// CitiesResponse represents a filtered and sorted city list
type CitiesResponse struct {
	Country   string         `json:"country" doc:"Requested country"`
	SortOrder string         `json:"sortOrder" doc:"Applied sort order, empty for upstream order"`
	Count     int            `json:"count" doc:"Number of cities returned"`
	Cities    []CityResponse `json:"cities" doc:"Cities of the country"`
}

// CountryStatsResponse combines country facts, cities and an optional chart
type CountryStatsResponse struct {
	Country     string               `json:"country" doc:"Requested country"`
	CountryInfo *CountryInfoResponse `json:"countryInfo" doc:"Country facts, null when the upstream does not know the country"`
	Cities      []CityResponse       `json:"cities" doc:"Cities of the country"`
	Chart       *ChartResponse       `json:"chart,omitempty" doc:"Bar chart of the biggest cities"`
}

// TopCitiesResponse represents the biggest cities of a country
type TopCitiesResponse struct {
	Country string                   `json:"country" doc:"Requested country"`
	Cities  []CityPopulationResponse `json:"cities" doc:"Cities ranked by population, largest first"`
}
