package repository

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/okian/tickets/internal/domain/model"
	"github.com/okian/tickets/pkg/metrics"
)

// Store provides read access to the ticket collection.
type Store interface {
	// Load reads the whole collection. It either returns every ticket or an
	// error; there is no partial success.
	Load(ctx context.Context) (model.Flight, error)
}

// FileStore loads the collection from a JSON file on every call.
type FileStore struct {
	path    string
	decoder *Decoder
}

// NewFileStore creates a store reading the document at path.
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{
		path:    path,
		decoder: NewDecoder(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Path returns the document path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the document. Errors carry a stack trace.
func (s *FileStore) Load(ctx context.Context) (model.Flight, error) {
	if err := ctx.Err(); err != nil {
		return model.Flight{}, errors.WithStack(err)
	}

	start := time.Now()
	defer func() {
		metrics.RecordLoadLatency(float64(time.Since(start).Milliseconds()))
	}()

	f, err := os.Open(s.path)
	if err != nil {
		metrics.RecordLoadError("io")
		return model.Flight{}, errors.Wrapf(err, "open tickets file %s", s.path)
	}
	defer func() { _ = f.Close() }()

	flight, err := s.decoder.Decode(f)
	if err != nil {
		metrics.RecordLoadError("decode")
		return model.Flight{}, errors.Wrapf(err, "decode tickets file %s", s.path)
	}

	metrics.UpdateTicketsLoaded(flight.Len())
	return flight, nil
}
