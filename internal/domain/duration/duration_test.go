package duration_test

import (
	"testing"
	"time"

	"github.com/okian/tickets/internal/domain/duration"
	"github.com/okian/tickets/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// leg builds a ticket departing 2018-05-12 10:00 that lasts the given minutes.
func leg(carrier string, minutes int) model.Ticket {
	dep := time.Date(2018, time.May, 12, 10, 0, 0, 0, time.UTC)
	arr := dep.Add(time.Duration(minutes) * time.Minute)
	return model.Ticket{
		OriginName:      model.DefaultOriginName,
		DestinationName: model.DefaultDestinationName,
		DepartureDate:   model.Date{Year: dep.Year(), Month: dep.Month(), Day: dep.Day()},
		DepartureTime:   model.Clock{Hour: dep.Hour(), Minute: dep.Minute()},
		ArrivalDate:     model.Date{Year: arr.Year(), Month: arr.Month(), Day: arr.Day()},
		ArrivalTime:     model.Clock{Hour: arr.Hour(), Minute: arr.Minute()},
		Carrier:         carrier,
	}
}

func TestFormat(t *testing.T) {
	Convey("Given durations around the rendering boundaries", t, func() {
		cases := []struct {
			minutes int64
			want    string
		}{
			{0, "0/minutes"},
			{45, "45/minutes"},
			{60, "60/minutes"},
			{61, "1/hours 1/minutes"},
			{90, "1/hours 30/minutes"},
			{1440, "24/hours 0/minutes"},
			{1499, "24/hours 59/minutes"},
			{1500, "1/days 1/hours 0/minutes"},
			{3000, "2/days 2/hours 0/minutes"},
			{2*1440 + 3*60 + 7, "2/days 3/hours 7/minutes"},
		}

		for _, tc := range cases {
			Convey("Then "+tc.want+" is rendered", func() {
				So(duration.Format(tc.minutes), ShouldEqual, tc.want)
			})
		}
	})
}

func TestMinutes(t *testing.T) {
	Convey("Given a same-day ticket", t, func() {
		tk := leg("S7", 135)

		Convey("Then its duration is the difference of the instants", func() {
			So(duration.Minutes(tk), ShouldEqual, 135)
		})
	})

	Convey("Given an overnight ticket", t, func() {
		tk := model.Ticket{
			DepartureDate: model.Date{Year: 2018, Month: time.May, Day: 12},
			DepartureTime: model.Clock{Hour: 23, Minute: 50},
			ArrivalDate:   model.Date{Year: 2018, Month: time.May, Day: 13},
			ArrivalTime:   model.Clock{Hour: 1, Minute: 20},
		}

		Convey("Then the calendar date is taken into account", func() {
			So(duration.Minutes(tk), ShouldEqual, 90)
		})
	})

	Convey("Given a ticket spanning several days", t, func() {
		tk := model.Ticket{
			DepartureDate: model.Date{Year: 2018, Month: time.December, Day: 31},
			DepartureTime: model.Clock{Hour: 9, Minute: 0},
			ArrivalDate:   model.Date{Year: 2019, Month: time.January, Day: 2},
			ArrivalTime:   model.Clock{Hour: 10, Minute: 0},
		}

		Convey("Then the whole span is counted", func() {
			So(duration.Minutes(tk), ShouldEqual, 49*60)
			So(duration.Format(duration.Minutes(tk)), ShouldEqual, "2/days 1/hours 0/minutes")
		})
	})
}

func TestMinimumByCarrier(t *testing.T) {
	Convey("Given legs from several carriers", t, func() {
		legs := duration.Legs([]model.Ticket{
			leg("TK", 600),
			leg("S7", 90),
			leg("TK", 480),
			leg("SU", 700),
			leg("S7", 45),
			leg("TK", 520),
		})

		Convey("When reducing to the minimum per carrier", func() {
			got := duration.MinimumByCarrier(legs)

			Convey("Then there is exactly one entry per carrier, sorted", func() {
				So(got, ShouldHaveLength, 3)
				So(got[0].Carrier, ShouldEqual, "S7")
				So(got[1].Carrier, ShouldEqual, "SU")
				So(got[2].Carrier, ShouldEqual, "TK")
			})

			Convey("And each entry holds the shortest leg", func() {
				So(got[0].Leg.Minutes, ShouldEqual, 45)
				So(got[1].Leg.Minutes, ShouldEqual, 700)
				So(got[2].Leg.Minutes, ShouldEqual, 480)
				So(got[2].Leg.Ticket.Carrier, ShouldEqual, "TK")
			})

			Convey("And the report lines render carrier and duration", func() {
				So(got[0].String(), ShouldEqual, "S7: 45/minutes")
				So(got[2].String(), ShouldEqual, "TK: 8/hours 0/minutes")
			})
		})
	})

	Convey("Given two legs with the same minimum", t, func() {
		first := leg("A", 60)
		first.Price = 1
		second := leg("A", 60)
		second.Price = 2

		Convey("Then the first one seen is kept", func() {
			got := duration.MinimumByCarrier(duration.Legs([]model.Ticket{first, second}))
			So(got, ShouldHaveLength, 1)
			So(got[0].Leg.Ticket.Price, ShouldEqual, 1)
		})
	})

	Convey("Given no legs", t, func() {
		Convey("Then no carrier is reported", func() {
			So(duration.MinimumByCarrier(nil), ShouldBeEmpty)
		})
	})

	Convey("Given the two-ticket scenario for carrier A", t, func() {
		got := duration.MinimumByCarrier(duration.Legs([]model.Ticket{leg("A", 90), leg("A", 45)}))

		Convey("Then the report line shows the shorter flight", func() {
			So(got, ShouldHaveLength, 1)
			So(got[0].String(), ShouldEqual, "A: 45/minutes")
		})
	})
}
