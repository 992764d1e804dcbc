// Package repository loads ticket collections from their source document.
package repository

// DecoderOption applies a configuration option to the Decoder.
type DecoderOption func(*Decoder)

// WithRootKey sets the top-level key holding the ticket array.
func WithRootKey(key string) DecoderOption {
	return func(d *Decoder) {
		if key != "" {
			d.rootKey = key
		}
	}
}

// WithDateLayout sets the time.Parse layout for date fields.
func WithDateLayout(layout string) DecoderOption {
	return func(d *Decoder) {
		if layout != "" {
			d.dateLayout = layout
		}
	}
}

// WithClockLayout sets the time.Parse layout for time-of-day fields.
func WithClockLayout(layout string) DecoderOption {
	return func(d *Decoder) {
		if layout != "" {
			d.clockLayout = layout
		}
	}
}

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithDecoder sets the decoder used by the store.
func WithDecoder(d *Decoder) Option {
	return func(s *FileStore) {
		if d != nil {
			s.decoder = d
		}
	}
}
