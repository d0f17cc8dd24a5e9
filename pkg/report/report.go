/*
report appends generated reports to a running summary file, each entry
titled and timestamped so successive runs accumulate a history.
*/
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	// Packages
	mcpagent "github.com/mcp-demos/go-mcpagent"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	timestampFormat = "2006-01-02 15:04"
	separatorWidth  = 50
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append writes a titled, timestamped entry to the summary file,
// creating it when it does not exist
func Append(path, title, text string) error {
	if path == "" {
		return mcpagent.ErrBadParameter.With("path is required")
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := fmt.Fprint(file, Entry(title, text, time.Now())); err != nil {
		return err
	}
	return nil
}

// Entry formats a single summary entry
func Entry(title, text string, at time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s - %s\n", title, at.Format(timestampFormat))
	sb.WriteString(strings.Repeat("=", separatorWidth) + "\n")
	sb.WriteString(text + "\n")
	return sb.String()
}
