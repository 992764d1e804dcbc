package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/okian/tickets/internal/domain/model"
)

// Default decoder configuration constants.
const (
	defaultRootKey = "tickets"
	centuryBase    = 2000
)

var (
	errMissing   = errors.New("missing")
	jsonNull     = []byte("null") //nolint:gochecknoglobals // read-only literal
	errNotObject = errors.New("not a JSON object")
)

// Decoder turns a tickets document into a model.Flight. A Decoder is
// immutable once built and safe for concurrent use.
type Decoder struct {
	rootKey     string
	dateLayout  string
	clockLayout string
	shortYear   bool
}

// NewDecoder creates a decoder for the tickets document layout.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		rootKey:     defaultRootKey,
		dateLayout:  DateLayout,
		clockLayout: ClockLayout,
	}

	// Apply all options
	for _, opt := range opts {
		opt(d)
	}
	d.shortYear = strings.Contains(d.dateLayout, "06") && !strings.Contains(d.dateLayout, "2006")

	return d
}

// Decode reads one document from r. Either every ticket decodes or an error
// is returned; there is no partial result.
func (d *Decoder) Decode(r io.Reader) (model.Flight, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return model.Flight{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	rawTickets, ok := doc[d.rootKey]
	if !ok || bytes.Equal(bytes.TrimSpace(rawTickets), jsonNull) {
		return model.Flight{}, fmt.Errorf("%w: key %q %w", ErrMalformedDocument, d.rootKey, errMissing)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawTickets, &items); err != nil {
		return model.Flight{}, fmt.Errorf("%w: key %q: %w", ErrMalformedDocument, d.rootKey, err)
	}

	tickets := make([]model.Ticket, 0, len(items))
	for i, item := range items {
		t, err := d.decodeTicket(i, item)
		if err != nil {
			return model.Flight{}, err
		}
		tickets = append(tickets, t)
	}

	return model.Flight{Tickets: tickets}, nil
}

func (d *Decoder) decodeTicket(index int, raw json.RawMessage) (model.Ticket, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return model.Ticket{}, &DecodeError{Index: index, Err: errNotObject}
	}

	var t model.Ticket
	for _, f := range ticketSchema {
		value, ok := obj[f.key]
		if !ok || bytes.Equal(bytes.TrimSpace(value), jsonNull) {
			return model.Ticket{}, &DecodeError{Index: index, Key: f.key, Err: errMissing}
		}
		if err := f.set(d, &t, value); err != nil {
			return model.Ticket{}, &DecodeError{Index: index, Key: f.key, Err: err}
		}
	}
	return t, nil
}

// year maps a parsed two-digit year onto 2000-2099.
func (d *Decoder) year(y int) int {
	if d.shortYear && y < centuryBase {
		return y%100 + centuryBase
	}
	return y
}
