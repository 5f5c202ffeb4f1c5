package city

import (
	"testing"

	"countrystats-api/core/domain"

	"github.com/stretchr/testify/assert"
)

func city(name string, year int, value int64) domain.City {
	return domain.City{
		City:    name,
		Country: "Switzerland",
		PopulationCounts: []domain.PopulationCount{
			{Year: domain.NumericOf(year), Value: domain.NumericOf(value)},
		},
	}
}

func TestFilterByCountry(t *testing.T) {
	cities := []domain.City{
		city("Zurich", 2019, 100),
		{City: "Lyon", Country: "France"},
		{City: "Geneva", Country: "switzerland"},
	}

	got := FilterByCountry(cities, "SWITZERLAND")
	assert.Equal(t, []string{"Zurich", "Geneva"}, cityNames(got))

	assert.NotNil(t, FilterByCountry(nil, "Switzerland"))
}

func TestSortCities_AllOrders(t *testing.T) {
	cities := []domain.City{
		city("Zurich", 2019, 100),
		city("Basel", 2017, 500),
		city("Bern", 2018, 300),
	}

	tests := []struct {
		order domain.SortOrder
		want  []string
	}{
		{domain.SortNameAsc, []string{"Basel", "Bern", "Zurich"}},
		{domain.SortNameDesc, []string{"Zurich", "Bern", "Basel"}},
		{domain.SortPopulationAsc, []string{"Zurich", "Bern", "Basel"}},
		{domain.SortPopulationDesc, []string{"Basel", "Bern", "Zurich"}},
		{domain.SortYearAsc, []string{"Basel", "Bern", "Zurich"}},
		{domain.SortYearDesc, []string{"Zurich", "Bern", "Basel"}},
		{domain.SortNone, []string{"Zurich", "Basel", "Bern"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			assert.Equal(t, tt.want, cityNames(SortCities(cities, tt.order)))
		})
	}

	assert.Equal(t, []string{"Zurich", "Basel", "Bern"}, cityNames(cities), "input must not be reordered")
}

func TestSortCities_Stable(t *testing.T) {
	cities := []domain.City{
		city("First", 2019, 300),
		city("Second", 2018, 100),
		city("Third", 2017, 300),
		city("Fourth", 2016, 300),
	}

	got := SortCities(cities, domain.SortPopulationDesc)
	assert.Equal(t, []string{"First", "Third", "Fourth", "Second"}, cityNames(got))

	got = SortCities(cities, domain.SortPopulationAsc)
	assert.Equal(t, []string{"Second", "First", "Third", "Fourth"}, cityNames(got))
}

func TestSortCities_Idempotent(t *testing.T) {
	cities := []domain.City{
		city("Zurich", 2019, 100),
		city("Basel", 2017, 500),
		city("Bern", 2018, 300),
		{City: "Aarau", Country: "Switzerland"},
	}

	for _, order := range domain.SortOrders {
		once := SortCities(cities, order)
		twice := SortCities(once, order)
		assert.Equal(t, once, twice, "order %s", order)
	}
}

func TestSortCities_MissingKeysLast(t *testing.T) {
	absent := domain.City{
		City:             "Absent",
		Country:          "Switzerland",
		PopulationCounts: []domain.PopulationCount{{Sex: "Both Sexes"}},
	}
	cities := []domain.City{
		{City: "Empty", Country: "Switzerland"},
		city("Zurich", 2019, 100),
		absent,
		city("Basel", 2017, 500),
	}

	for _, order := range []domain.SortOrder{
		domain.SortPopulationAsc, domain.SortPopulationDesc,
		domain.SortYearAsc, domain.SortYearDesc,
	} {
		got := cityNames(SortCities(cities, order))
		assert.Equal(t, []string{"Empty", "Absent"}, got[2:], "order %s", order)
	}
}

func TestSortCities_UsesFirstCount(t *testing.T) {
	multi := domain.City{
		City: "Geneva",
		PopulationCounts: []domain.PopulationCount{
			{Year: domain.NumericOf(2010), Value: domain.NumericOf(int64(50))},
			{Year: domain.NumericOf(2020), Value: domain.NumericOf(int64(5000))},
		},
	}
	cities := []domain.City{city("Zurich", 2019, 100), multi}

	got := SortCities(cities, domain.SortPopulationDesc)
	assert.Equal(t, []string{"Zurich", "Geneva"}, cityNames(got))
}
