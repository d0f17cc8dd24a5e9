package weather

import (
	"sort"
	"strings"

	// Packages
	mcpagent "github.com/mcp-demos/go-mcpagent"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Coordinate is a latitude/longitude pair
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// cities maps a lower-cased US city name to its coordinate. The table is
// fixed at build time; anything outside it is reported back to the caller
// with the supported names.
var cities = map[string]Coordinate{
	"san francisco": {37.7749, -122.4194},
	"new york":      {40.7128, -74.0060},
	"los angeles":   {34.0522, -118.2437},
	"chicago":       {41.8781, -87.6298},
	"houston":       {29.7604, -95.3698},
	"phoenix":       {33.4484, -112.0740},
	"philadelphia":  {39.9526, -75.1652},
	"san antonio":   {29.4241, -98.4936},
	"san diego":     {32.7157, -117.1611},
	"dallas":        {32.7767, -96.7970},
	"miami":         {25.7617, -80.1918},
	"atlanta":       {33.7490, -84.3880},
	"boston":        {42.3601, -71.0589},
	"seattle":       {47.6062, -122.3321},
	"denver":        {39.7392, -104.9903},
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LookupCity returns the coordinate for a city name, case-insensitively.
// An unknown name returns an error listing the supported cities.
func LookupCity(name string) (Coordinate, error) {
	if coord, exists := cities[strings.ToLower(strings.TrimSpace(name))]; exists {
		return coord, nil
	}
	return Coordinate{}, mcpagent.ErrNotFound.Withf("city %q not found, supported cities: %s", name, strings.Join(SupportedCities(), ", "))
}

// SupportedCities returns the supported city names, sorted
func SupportedCities() []string {
	result := make([]string, 0, len(cities))
	for name := range cities {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
