// Package duration computes flight durations and per-carrier minimums.
//
// Durations are date-aware: departure and arrival are combined into full
// instants before subtracting, so flights crossing midnight or spanning
// several days are measured correctly.
package duration

import (
	"fmt"
	"sort"
	"time"

	"github.com/okian/tickets/internal/domain/model"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
)

// Leg pairs a ticket with its computed duration. The duration lives here
// rather than on the ticket so tickets stay immutable after load.
type Leg struct {
	Ticket  model.Ticket
	Minutes int64
}

// CarrierMinimum is the shortest leg reported for one carrier.
type CarrierMinimum struct {
	Carrier string
	Leg     Leg
}

// Minutes returns the whole minutes between departure and arrival of t.
func Minutes(t model.Ticket) int64 {
	return int64(t.Arrival().Sub(t.Departure()) / time.Minute)
}

// Legs computes the duration of every ticket, preserving order.
func Legs(tickets []model.Ticket) []Leg {
	legs := make([]Leg, len(tickets))
	for i, t := range tickets {
		legs[i] = Leg{Ticket: t, Minutes: Minutes(t)}
	}
	return legs
}

// MinimumByCarrier groups legs by carrier and keeps the shortest leg of each
// group. On ties the first leg seen wins. The result holds exactly one entry
// per distinct carrier, sorted by carrier; empty input yields an empty result.
func MinimumByCarrier(legs []Leg) []CarrierMinimum {
	best := make(map[string]Leg, len(legs))
	for _, leg := range legs {
		cur, ok := best[leg.Ticket.Carrier]
		if !ok || leg.Minutes < cur.Minutes {
			best[leg.Ticket.Carrier] = leg
		}
	}

	out := make([]CarrierMinimum, 0, len(best))
	for carrier, leg := range best {
		out = append(out, CarrierMinimum{Carrier: carrier, Leg: leg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Carrier < out[j].Carrier })
	return out
}

// Format renders a duration in minutes:
//
//	<= 60 minutes  -> "45/minutes"
//	> 24 hours     -> "1/days 1/hours 0/minutes"
//	otherwise      -> "1/hours 1/minutes"
func Format(minutes int64) string {
	hours := minutes / minutesPerHour
	days := hours / hoursPerDay
	restMinutes := minutes - hours*minutesPerHour
	restHours := hours - days*hoursPerDay

	switch {
	case minutes <= minutesPerHour:
		return fmt.Sprintf("%d/minutes", minutes)
	case hours > hoursPerDay:
		return fmt.Sprintf("%d/days %d/hours %d/minutes", days, restHours, restMinutes)
	default:
		return fmt.Sprintf("%d/hours %d/minutes", hours, restMinutes)
	}
}

// String renders the report line for the carrier, e.g. "S7: 1/hours 5/minutes".
func (c CarrierMinimum) String() string {
	return c.Carrier + ": " + Format(c.Leg.Minutes)
}
