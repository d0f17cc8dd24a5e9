package types

import "unicode"

// IsIdentifier returns true if the string is a valid identifier: a
// letter or underscore followed by letters, digits and underscores.
// Tool names must be identifiers so they survive the round trip
// through model tool-call requests.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
