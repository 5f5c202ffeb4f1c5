// ABOUTME: Population domain models for cities, yearly counts and country info
// ABOUTME: Mirrors the upstream payload shapes, including its uniform response envelope

package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotAnEnvelope = errors.New("response envelope is not a JSON object")

// Envelope is the wrapper the upstream puts around every response.
type Envelope[T any] struct {
	// Error is the upstream's own failure flag
	Error bool `json:"error"`

	// Message is a human readable status from the upstream
	Message string `json:"msg"`

	// Data is never nil after decoding
	Data []T `json:"data"`
}

// envelopeJSON has the same shape as Envelope without its UnmarshalJSON method.
type envelopeJSON[T any] struct {
	Error   bool   `json:"error"`
	Message string `json:"msg"`
	Data    []T    `json:"data"`
}

// UnmarshalJSON decodes the envelope and defaults a missing or null data
// field to an empty slice. Anything other than a JSON object, null included,
// is an error.
func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	if trimmed := bytes.TrimSpace(b); len(trimmed) == 0 || trimmed[0] != '{' {
		return errNotAnEnvelope
	}

	var raw envelopeJSON[T]
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	e.Error = raw.Error
	e.Message = raw.Message
	e.Data = raw.Data
	if e.Data == nil {
		e.Data = []T{}
	}
	return nil
}

// PopulationCount is a single census figure for a city.
type PopulationCount struct {
	Year        Numeric[int]   `json:"year"`
	Value       Numeric[int64] `json:"value"`
	Sex         string         `json:"sex"`
	Reliability string         `json:"reliability"`
}

// UnmarshalJSON accepts the upstream's "reliabilty" spelling as well as the
// corrected one.
func (p *PopulationCount) UnmarshalJSON(b []byte) error {
	var raw struct {
		Year        Numeric[int]   `json:"year"`
		Value       Numeric[int64] `json:"value"`
		Sex         string         `json:"sex"`
		Reliability string         `json:"reliability"`
		Reliabilty  string         `json:"reliabilty"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*p = PopulationCount{
		Year:        raw.Year,
		Value:       raw.Value,
		Sex:         raw.Sex,
		Reliability: raw.Reliability,
	}
	if p.Reliability == "" {
		p.Reliability = raw.Reliabilty
	}
	return nil
}

// City is a city together with its population history.
//
// PopulationCounts keeps the upstream order. The first entry is treated as
// the most relevant one.
type City struct {
	City             string            `json:"city"`
	Country          string            `json:"country"`
	PopulationCounts []PopulationCount `json:"populationCounts"`
}

// FirstCount returns the first population count, if any.
func (c City) FirstCount() (PopulationCount, bool) {
	if len(c.PopulationCounts) == 0 {
		return PopulationCount{}, false
	}
	return c.PopulationCounts[0], true
}

// Population returns the value of the first population count.
func (c City) Population() (int64, bool) {
	first, ok := c.FirstCount()
	if !ok {
		return 0, false
	}
	return first.Value.Get()
}

// Year returns the year of the first population count.
func (c City) Year() (int, bool) {
	first, ok := c.FirstCount()
	if !ok {
		return 0, false
	}
	return first.Year.Get()
}

// CountryInfo holds the general facts the upstream publishes for a country.
type CountryInfo struct {
	Name     string `json:"name"`
	Capital  string `json:"capital"`
	Currency string `json:"currency"`
	DialCode string `json:"dialCode"`
	Flag     string `json:"flag"`
}
