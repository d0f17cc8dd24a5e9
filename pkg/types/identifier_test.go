package types_test

import (
	"testing"

	// Packages
	types "github.com/mcp-demos/go-mcpagent/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

func Test_identifier_001(t *testing.T) {
	assert := assert.New(t)
	assert.True(types.IsIdentifier("add"))
	assert.True(types.IsIdentifier("calculate_average"))
	assert.True(types.IsIdentifier("_private"))
	assert.False(types.IsIdentifier(""))
	assert.False(types.IsIdentifier("1add"))
	assert.False(types.IsIdentifier("not a name"))
	assert.False(types.IsIdentifier("dash-name"))
}
