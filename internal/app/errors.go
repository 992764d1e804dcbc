package service

import "errors"

// Sentinel kinds for analysis errors.
var (
	ErrNoStore           = errors.New("no ticket store configured")
	ErrNoMatchingTickets = errors.New("no tickets match the route")
)
