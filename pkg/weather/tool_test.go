package weather

import (
	"encoding/json"
	"strings"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func Test_tool_001(t *testing.T) {
	assert := assert.New(t)

	_, err := decodeForecastRequest(nil)
	assert.Error(err)

	_, err = decodeForecastRequest(json.RawMessage(`not json`))
	assert.Error(err)

	req, err := decodeForecastRequest(json.RawMessage(`{"latitude":37.7749,"longitude":-122.4194,"location_name":"San Francisco"}`))
	assert.NoError(err)
	assert.Equal(37.7749, req.Latitude)
	assert.Equal("San Francisco", req.Name())

	// Name falls back to the coordinate
	req, err = decodeForecastRequest(json.RawMessage(`{"latitude":1,"longitude":2}`))
	assert.NoError(err)
	assert.Equal("1.0000,2.0000", req.Name())
}

func Test_tool_002(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("San Francisco", titleCase("san francisco"))
	assert.Equal("New York", titleCase("  NEW YORK "))
	assert.Equal("Miami", titleCase("miami"))
}

func Test_tool_003(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("short", truncate("short", 150))
	long := strings.Repeat("a", 200)
	assert.Len(truncate(long, 150), 150)
}
