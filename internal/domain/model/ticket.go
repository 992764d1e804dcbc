// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"
)

// Date is a calendar date without a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// At combines the date with a time of day on a zone-free (UTC) axis.
func (d Date) At(c Clock) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%02d", d.Day, int(d.Month), d.Year%100)
}

func (c Clock) String() string {
	return fmt.Sprintf("%d:%02d", c.Hour, c.Minute)
}

// Ticket is one directed flight leg.
// Fields mirror the keys of the tickets document.
type Ticket struct {
	Origin          string // origin airport code
	OriginName      string // origin display name
	Destination     string // destination airport code
	DestinationName string // destination display name
	DepartureDate   Date
	DepartureTime   Clock
	ArrivalDate     Date
	ArrivalTime     Clock
	Carrier         string // carrier identifier, shared by many tickets
	Stops           int
	Price           int
}

// Departure returns the departure instant.
func (t Ticket) Departure() time.Time {
	return t.DepartureDate.At(t.DepartureTime)
}

// Arrival returns the arrival instant.
func (t Ticket) Arrival() time.Time {
	return t.ArrivalDate.At(t.ArrivalTime)
}

// Flight is the full set of tickets loaded from one source file.
type Flight struct {
	Tickets []Ticket
}

// Len returns the number of tickets in the collection.
func (f Flight) Len() int {
	return len(f.Tickets)
}
