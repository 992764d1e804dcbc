// Package service runs the ticket analyses: minimum flight time per carrier
// and the difference between mean and median price.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/tickets/internal/adapters/repository"
	"github.com/okian/tickets/internal/domain/duration"
	"github.com/okian/tickets/internal/domain/model"
	"github.com/okian/tickets/internal/domain/pricing"
	"github.com/okian/tickets/pkg/logger"
	"github.com/okian/tickets/pkg/metrics"
)

// Analysis names used in logs and metrics.
const (
	AnalysisDuration = "duration"
	AnalysisPrice    = "price"
)

// Service runs the analyses over a ticket store. It holds no mutable state:
// every call loads the collection afresh.
type Service struct {
	store  repository.Store
	route  model.Route
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the ticket store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRoute sets the analysed route.
func WithRoute(route model.Route) Option {
	return func(s *Service) {
		if route.OriginName != "" && route.DestinationName != "" {
			s.route = route
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		route: model.DefaultRoute(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Route returns the analysed route.
func (s *Service) Route() model.Route {
	return s.route
}

// CarrierMinimums returns the shortest flight per carrier on the route.
// It returns ErrNoMatchingTickets when no ticket matches.
func (s *Service) CarrierMinimums(ctx context.Context) ([]duration.CarrierMinimum, error) {
	tickets, err := s.matching(ctx, AnalysisDuration)
	if err != nil {
		return nil, err
	}

	legs := duration.Legs(tickets)
	log := s.log()
	for _, leg := range legs {
		log.Debug(ctx, "flight duration",
			logger.String("carrier", leg.Ticket.Carrier),
			logger.String("departure", leg.Ticket.Departure().Format(time.DateTime)),
			logger.String("arrival", leg.Ticket.Arrival().Format(time.DateTime)),
			logger.Int64("minutes", leg.Minutes),
		)
	}

	return duration.MinimumByCarrier(legs), nil
}

// PriceSummary returns mean, median and their difference for the route.
// It returns ErrNoMatchingTickets when no ticket matches.
func (s *Service) PriceSummary(ctx context.Context) (pricing.Summary, error) {
	tickets, err := s.matching(ctx, AnalysisPrice)
	if err != nil {
		return pricing.Summary{}, err
	}

	summary, err := pricing.Summarize(pricing.Prices(tickets))
	if err != nil {
		return pricing.Summary{}, fmt.Errorf("summarize prices: %w", err)
	}
	return summary, nil
}

// MinimumFlightTime logs one line per carrier with its minimum flight time.
func (s *Service) MinimumFlightTime(ctx context.Context) (err error) {
	log, done := s.begin(ctx, AnalysisDuration)
	defer func() { done(err) }()

	minimums, err := s.CarrierMinimums(ctx)
	if err != nil {
		return err
	}

	for _, m := range minimums {
		log.Info(ctx, m.String(),
			logger.String("carrier", m.Carrier),
			logger.Int64("minutes", m.Leg.Minutes),
		)
	}
	metrics.UpdateCarriersReported(len(minimums))
	return nil
}

// PriceDifference logs the median price, the mean price and their difference.
func (s *Service) PriceDifference(ctx context.Context) (err error) {
	log, done := s.begin(ctx, AnalysisPrice)
	defer func() { done(err) }()

	summary, err := s.PriceSummary(ctx)
	if err != nil {
		return err
	}

	log.Info(ctx, summary.String(),
		logger.Int("count", summary.Count),
		logger.Float64("median", summary.Median),
		logger.Float64("mean", summary.Mean),
		logger.Float64("difference", summary.Difference),
	)
	metrics.UpdatePriceDifference(summary.Difference)
	return nil
}

// matching loads the collection and filters it by route.
func (s *Service) matching(ctx context.Context, analysis string) ([]model.Ticket, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}

	flight, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}

	tickets := s.route.Filter(flight.Tickets)
	metrics.UpdateTicketsMatched(analysis, len(tickets))
	if len(tickets) == 0 {
		return nil, fmt.Errorf("%w: %s -> %s (%d tickets loaded)",
			ErrNoMatchingTickets, s.route.OriginName, s.route.DestinationName, flight.Len())
	}
	return tickets, nil
}

// begin tags a run with an id and returns the run logger and a completion
// hook recording outcome and latency.
func (s *Service) begin(ctx context.Context, analysis string) (logger.Logger, func(error)) {
	log := s.log().With(
		logger.String("analysis", analysis),
		logger.String("run_id", uuid.NewString()),
	)
	log.Debug(ctx, "analysis started",
		logger.String("origin", s.route.OriginName),
		logger.String("destination", s.route.DestinationName),
	)

	start := time.Now()
	return log, func(err error) {
		metrics.RecordAnalysisLatency(analysis, float64(time.Since(start).Milliseconds()))
		switch {
		case err == nil:
			metrics.RecordAnalysisRun(analysis, metrics.OutcomeSuccess)
		case errors.Is(err, ErrNoMatchingTickets):
			metrics.RecordAnalysisRun(analysis, metrics.OutcomeEmpty)
		default:
			metrics.RecordAnalysisRun(analysis, metrics.OutcomeError)
		}
	}
}

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		return logger.Get()
	}
	return s.logger
}
