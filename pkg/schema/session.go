package schema

import (
	"encoding/json"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Session is the ordered sequence of messages exchanged with the reasoning
// model during one agent run. It is append-only; messages are never mutated
// after they have been added.
type Session []*Message

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append adds a message to the session
func (s *Session) Append(message Message) {
	*s = append(*s, &message)
}

// Last returns the most recent message, or nil for an empty session
func (s Session) Last() *Message {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Session) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
