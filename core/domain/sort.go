package domain

import (
	"strings"

	apperrors "countrystats-api/core/errors"
)

// SortOrder names one of the orderings a city list can be requested in.
type SortOrder string

const (
	// SortNone keeps the upstream order
	SortNone           SortOrder = ""
	SortNameAsc        SortOrder = "nameAsc"
	SortNameDesc       SortOrder = "nameDesc"
	SortPopulationAsc  SortOrder = "populationAsc"
	SortPopulationDesc SortOrder = "populationDesc"
	SortYearAsc        SortOrder = "yearAsc"
	SortYearDesc       SortOrder = "yearDesc"
)

// SortOrders lists every named ordering, in documentation order.
var SortOrders = []SortOrder{
	SortNameAsc,
	SortNameDesc,
	SortPopulationAsc,
	SortPopulationDesc,
	SortYearAsc,
	SortYearDesc,
}

// Valid reports whether o is SortNone or one of SortOrders.
func (o SortOrder) Valid() bool {
	if o == SortNone {
		return true
	}
	for _, known := range SortOrders {
		if o == known {
			return true
		}
	}
	return false
}

// ParseSortOrder converts user input into a SortOrder. Blank input means SortNone.
func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(strings.TrimSpace(s))
	if !o.Valid() {
		return SortNone, &apperrors.ValidationError{
			Field:   "sortOrder",
			Message: "unknown sort order " + s,
		}
	}
	return o, nil
}
