package model

// Default route display names.
const (
	DefaultOriginName      = "Владивосток"
	DefaultDestinationName = "Тель-Авив"
)

// Route selects tickets by origin and destination display names.
type Route struct {
	OriginName      string
	DestinationName string
}

// DefaultRoute returns the Vladivostok to Tel Aviv route.
func DefaultRoute() Route {
	return Route{
		OriginName:      DefaultOriginName,
		DestinationName: DefaultDestinationName,
	}
}

// Matches reports whether both display names of t equal the route's.
func (r Route) Matches(t Ticket) bool {
	return t.OriginName == r.OriginName && t.DestinationName == r.DestinationName
}

// Filter returns the tickets matching the route, preserving order.
// The input slice is not modified.
func (r Route) Filter(tickets []Ticket) []Ticket {
	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if r.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
