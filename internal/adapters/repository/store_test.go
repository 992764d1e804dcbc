package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickets.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestFileStore_Load(t *testing.T) {
	Convey("Given a file store over a valid document", t, func() {
		ctx := context.Background()
		path := writeDocument(t, document(validTicket, validTicket))
		store := NewFileStore(path)

		Convey("When loading", func() {
			flight, err := store.Load(ctx)

			Convey("Then every ticket is returned", func() {
				So(err, ShouldBeNil)
				So(flight.Len(), ShouldEqual, 2)
				So(flight.Tickets[0].Carrier, ShouldEqual, "TK")
				So(store.Path(), ShouldEqual, path)
			})
		})

		Convey("When the file changes between loads", func() {
			_, err := store.Load(ctx)
			So(err, ShouldBeNil)
			So(os.WriteFile(path, []byte(document(validTicket)), 0o600), ShouldBeNil)

			flight, err := store.Load(ctx)

			Convey("Then the fresh content is read", func() {
				So(err, ShouldBeNil)
				So(flight.Len(), ShouldEqual, 1)
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := store.Load(cctx)

			Convey("Then the load is aborted", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})

	Convey("Given a file store over a missing file", t, func() {
		store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

		Convey("Then loading fails with the underlying I/O cause", func() {
			flight, err := store.Load(context.Background())
			So(err, ShouldNotBeNil)
			So(errors.Is(err, fs.ErrNotExist), ShouldBeTrue)
			So(flight.Tickets, ShouldBeNil)
		})

		Convey("And the error carries a stack trace", func() {
			_, err := store.Load(context.Background())
			So(fmt.Sprintf("%+v", err), ShouldContainSubstring, "store.go")
		})
	})

	Convey("Given a file store over a malformed document", t, func() {
		path := writeDocument(t, document(validTicket, withField("price", "")))
		store := NewFileStore(path)

		Convey("Then nothing is returned and the ticket error is exposed", func() {
			flight, err := store.Load(context.Background())
			So(errors.Is(err, ErrMalformedTicket), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, path)
			So(flight.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given a file store with a custom decoder", t, func() {
		path := writeDocument(t, `{"legs": [`+validTicket+`]}`)
		store := NewFileStore(path, WithDecoder(NewDecoder(WithRootKey("legs"))), WithDecoder(nil))

		Convey("Then the decoder is used", func() {
			flight, err := store.Load(context.Background())
			So(err, ShouldBeNil)
			So(flight.Len(), ShouldEqual, 1)
		})
	})
}
