package repository

import (
	"errors"
	"fmt"
)

// Sentinel kinds for ticket loading errors.
var (
	ErrMalformedDocument = errors.New("malformed tickets document")
	ErrMalformedTicket   = errors.New("malformed ticket")
)

// DecodeError reports which ticket and key failed to decode.
type DecodeError struct {
	Index int    // position of the ticket in the document
	Key   string // JSON key, empty when the ticket itself is not an object
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("ticket %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("ticket %d: %s: %v", e.Index, e.Key, e.Err)
}

// Unwrap returns ErrMalformedTicket and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrMalformedTicket, e.Err}
}
