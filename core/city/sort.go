package city

import (
	"cmp"
	"slices"
	"strings"

	"countrystats-api/core/domain"
)

// FilterByCountry keeps the cities whose country equals country, ignoring case.
// The result is a new slice in input order.
func FilterByCountry(cities []domain.City, country string) []domain.City {
	filtered := make([]domain.City, 0)
	for _, c := range cities {
		if strings.EqualFold(c.Country, country) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// SortCities returns a sorted copy of cities. The sort is stable. For the
// population and year orders, cities without a usable first population count
// go last regardless of direction. SortNone returns the copy unchanged.
func SortCities(cities []domain.City, order domain.SortOrder) []domain.City {
	sorted := slices.Clone(cities)
	if sorted == nil {
		sorted = []domain.City{}
	}

	var compare func(a, b domain.City) int
	switch order {
	case domain.SortNameAsc:
		compare = func(a, b domain.City) int { return cmp.Compare(a.City, b.City) }
	case domain.SortNameDesc:
		compare = func(a, b domain.City) int { return cmp.Compare(b.City, a.City) }
	case domain.SortPopulationAsc:
		compare = byKey(domain.City.Population, false)
	case domain.SortPopulationDesc:
		compare = byKey(domain.City.Population, true)
	case domain.SortYearAsc:
		compare = byKey(domain.City.Year, false)
	case domain.SortYearDesc:
		compare = byKey(domain.City.Year, true)
	default:
		return sorted
	}

	slices.SortStableFunc(sorted, compare)
	return sorted
}

func byKey[K cmp.Ordered](key func(domain.City) (K, bool), desc bool) func(a, b domain.City) int {
	return func(a, b domain.City) int {
		ka, okA := key(a)
		kb, okB := key(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		case desc:
			return cmp.Compare(kb, ka)
		default:
			return cmp.Compare(ka, kb)
		}
	}
}
