package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/okian/tickets/internal/domain/model"
)

// Layouts used by the tickets document.
const (
	DateLayout  = "02.01.06" // e.g. 21.09.17
	ClockLayout = "15:04"    // e.g. 9:35, leading zero optional
)

var (
	errNegative = errors.New("must not be negative")
	errEmpty    = errors.New("must not be empty")
)

// field maps one JSON key onto a ticket field.
type field struct {
	key string
	set func(d *Decoder, t *model.Ticket, raw json.RawMessage) error
}

// ticketSchema is the full key mapping of a ticket object. Every key is
// required; unknown keys are ignored.
var ticketSchema = []field{ //nolint:gochecknoglobals // immutable schema table
	{"origin", stringField(func(t *model.Ticket, v string) { t.Origin = v })},
	{"origin_name", stringField(func(t *model.Ticket, v string) { t.OriginName = v })},
	{"destination", stringField(func(t *model.Ticket, v string) { t.Destination = v })},
	{"destination_name", stringField(func(t *model.Ticket, v string) { t.DestinationName = v })},
	{"departure_date", dateField(func(t *model.Ticket, v model.Date) { t.DepartureDate = v })},
	{"departure_time", clockField(func(t *model.Ticket, v model.Clock) { t.DepartureTime = v })},
	{"arrival_date", dateField(func(t *model.Ticket, v model.Date) { t.ArrivalDate = v })},
	{"arrival_time", clockField(func(t *model.Ticket, v model.Clock) { t.ArrivalTime = v })},
	{"carrier", requiredStringField(func(t *model.Ticket, v string) { t.Carrier = v })},
	{"stops", countField(func(t *model.Ticket, v int) { t.Stops = v })},
	{"price", countField(func(t *model.Ticket, v int) { t.Price = v })},
}

func stringField(set func(*model.Ticket, string)) func(*Decoder, *model.Ticket, json.RawMessage) error {
	return func(_ *Decoder, t *model.Ticket, raw json.RawMessage) error {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		set(t, s)
		return nil
	}
}

func requiredStringField(set func(*model.Ticket, string)) func(*Decoder, *model.Ticket, json.RawMessage) error {
	return func(_ *Decoder, t *model.Ticket, raw json.RawMessage) error {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return errEmpty
		}
		set(t, s)
		return nil
	}
}

func dateField(set func(*model.Ticket, model.Date)) func(*Decoder, *model.Ticket, json.RawMessage) error {
	return func(d *Decoder, t *model.Ticket, raw json.RawMessage) error {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		ts, err := time.Parse(d.dateLayout, strings.TrimSpace(s))
		if err != nil {
			return err
		}
		set(t, model.Date{Year: d.year(ts.Year()), Month: ts.Month(), Day: ts.Day()})
		return nil
	}
}

func clockField(set func(*model.Ticket, model.Clock)) func(*Decoder, *model.Ticket, json.RawMessage) error {
	return func(d *Decoder, t *model.Ticket, raw json.RawMessage) error {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		ts, err := time.Parse(d.clockLayout, strings.TrimSpace(s))
		if err != nil {
			return err
		}
		set(t, model.Clock{Hour: ts.Hour(), Minute: ts.Minute()})
		return nil
	}
}

func countField(set func(*model.Ticket, int)) func(*Decoder, *model.Ticket, json.RawMessage) error {
	return func(_ *Decoder, t *model.Ticket, raw json.RawMessage) error {
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%d: %w", n, errNegative)
		}
		set(t, n)
		return nil
	}
}
