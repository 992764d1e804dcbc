// Package pricing summarizes ticket prices: mean, median and their difference.
package pricing

import (
	"fmt"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/okian/tickets/internal/domain/model"
)

// Summary holds the price statistics of a ticket subset.
type Summary struct {
	Count      int
	Median     float64
	Mean       float64
	Difference float64 // Mean - Median
}

// Prices extracts ticket prices, preserving order.
func Prices(tickets []model.Ticket) []int {
	out := make([]int, len(tickets))
	for i, t := range tickets {
		out[i] = t.Price
	}
	return out
}

// Summarize computes the mean and median of prices. For an even count the
// median is the mean of the two middle values. The input is not modified.
// It returns ErrEmptyInput when prices is empty.
func Summarize(prices []int) (Summary, error) {
	if len(prices) == 0 {
		return Summary{}, ErrEmptyInput
	}

	sorted := slices.Clone(prices)
	slices.Sort(sorted)
	data := stats.LoadRawData(sorted)

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}

	return Summary{
		Count:      len(sorted),
		Median:     median,
		Mean:       mean,
		Difference: mean - median,
	}, nil
}

// String renders the report line.
func (s Summary) String() string {
	return fmt.Sprintf("Median price: %.2f, Average price: %.2f, Difference: %.2f", s.Median, s.Mean, s.Difference)
}
