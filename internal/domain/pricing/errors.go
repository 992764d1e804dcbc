package pricing

import "errors"

// Sentinel kinds for pricing errors.
var (
	ErrEmptyInput = errors.New("no prices to summarize")
)
