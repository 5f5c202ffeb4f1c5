package domain

import "encoding/base64"

// CityPopulation is one labeled entry of a population summary series.
type CityPopulation struct {
	City       string `json:"city"`
	Population int64  `json:"population"`
}

// Chart is a rendered summary image together with the series it was drawn from.
type Chart struct {
	Title  string
	Series []CityPopulation
	PNG    []byte
}

// Base64 returns the PNG encoded with standard base64, ready for a data URI.
func (c *Chart) Base64() string {
	if c == nil || len(c.PNG) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(c.PNG)
}
