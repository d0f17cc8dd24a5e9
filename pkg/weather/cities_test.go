package weather_test

import (
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
	weather "github.com/mcp-demos/go-mcpagent/pkg/weather"
)

func Test_cities_001(t *testing.T) {
	assert := assert.New(t)
	names := weather.SupportedCities()
	assert.Len(names, 15)
	assert.Contains(names, "san francisco")
	assert.Contains(names, "new york")
	assert.Contains(names, "denver")
}

func Test_cities_002(t *testing.T) {
	assert := assert.New(t)
	coord, err := weather.LookupCity("Seattle")
	assert.NoError(err)
	assert.Equal(47.6062, coord.Latitude)
	assert.Equal(-122.3321, coord.Longitude)

	// Case and whitespace insensitive
	coord2, err := weather.LookupCity("  SEATTLE ")
	assert.NoError(err)
	assert.Equal(coord, coord2)
}

func Test_cities_003(t *testing.T) {
	assert := assert.New(t)
	_, err := weather.LookupCity("springfield")
	assert.Error(err)
	assert.Contains(err.Error(), "springfield")
	assert.Contains(err.Error(), "supported cities")
}
