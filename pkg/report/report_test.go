package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	// Packages
	report "github.com/mcp-demos/go-mcpagent/pkg/report"
	assert "github.com/stretchr/testify/assert"
)

func Test_report_001(t *testing.T) {
	assert := assert.New(t)

	at := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
	entry := report.Entry("MCP 10-City Weather", "New York: Sunny, 75F", at)
	assert.Contains(entry, "MCP 10-City Weather - 2026-08-30 09:15")
	assert.Contains(entry, strings.Repeat("=", 50))
	assert.Contains(entry, "New York: Sunny, 75F")
}

func Test_report_002(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "weather_summary.txt")
	assert.NoError(report.Append(path, "First", "report one"))
	assert.NoError(report.Append(path, "Second", "report two"))

	data, err := os.ReadFile(path)
	assert.NoError(err)

	// Both entries accumulate in order
	text := string(data)
	assert.Contains(text, "report one")
	assert.Contains(text, "report two")
	assert.Less(strings.Index(text, "report one"), strings.Index(text, "report two"))
}

func Test_report_003(t *testing.T) {
	assert := assert.New(t)
	assert.Error(report.Append("", "title", "text"))
}
