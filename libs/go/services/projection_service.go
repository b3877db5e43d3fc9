package services

import (
	"context"
	"sync"
	"time"

	"github.com/budget-planner/planner-api/libs/go/chart"
	"github.com/budget-planner/planner-api/libs/go/interfaces"
	"github.com/budget-planner/planner-api/libs/go/logger"
	"github.com/budget-planner/planner-api/libs/go/timeline"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// DefaultProjectionCacheTTL is how long a calculator stays cached without being invalidated
	DefaultProjectionCacheTTL = 10 * time.Minute

	// MaxHorizonYears bounds how far past its latest operation a timeline is projected
	MaxHorizonYears = chart.MaxSpanYears

	maxSeriesStepDays = 366
	maxSeriesSamples  = 420
)

// ProjectionService answers projection queries for stored timelines. One
// calculator is cached per profile and timeline until the timeline is saved.
type ProjectionService struct {
	store    interfaces.ProfileStore
	location *time.Location
	cache    *cache.Cache
	logger   *logger.StructuredLogger

	// generations counts invalidations per cache key. A calculator loaded
	// while its key was invalidated is returned but not cached.
	mu          sync.Mutex
	generations map[string]uint64
}

var _ interfaces.ProjectionService = (*ProjectionService)(nil)

// NewProjectionService creates a projection service on top of store.
// A non-positive ttl uses DefaultProjectionCacheTTL.
func NewProjectionService(store interfaces.ProfileStore, loc *time.Location, ttl time.Duration) *ProjectionService {
	if loc == nil {
		loc = time.Local
	}
	if ttl <= 0 {
		ttl = DefaultProjectionCacheTTL
	}
	return &ProjectionService{
		store:       store,
		location:    loc,
		cache:       cache.New(ttl, 2*ttl),
		logger:      logger.NewStructuredLogger(logger.ComponentProjection),
		generations: make(map[string]uint64),
	}
}

func cacheKey(profile, timelineName string) string {
	return profile + "\x00" + timelineName
}

func (s *ProjectionService) calculator(ctx context.Context, profile, timelineName string) (*timeline.Calculator, error) {
	key := cacheKey(profile, timelineName)
	if cached, found := s.cache.Get(key); found {
		return cached.(*timeline.Calculator), nil
	}

	generation := s.generation(key)
	ops, err := s.store.ListOperations(ctx, profile, timelineName)
	if err != nil {
		return nil, err
	}
	calc := timeline.For(ops, timeline.WithLocation(s.location))

	log := s.logger.WithTimeline(profile, timelineName).WithField("operations", len(ops))
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[key] != generation {
		log.Debug("Timeline changed while loading, calculator not cached")
		return calc, nil
	}
	s.cache.Set(key, calc, cache.DefaultExpiration)
	log.Debug("Projection calculator cached")
	return calc, nil
}

func (s *ProjectionService) generation(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[key]
}

// checkHorizon rejects a range end more than MaxHorizonYears past the latest
// operation, before any recurrence is expanded up to it.
func (s *ProjectionService) checkHorizon(calc *timeline.Calculator, to *time.Time) error {
	if to == nil {
		return nil
	}
	ops := calc.Operations()
	if len(ops) == 0 {
		return nil
	}
	latest := timeline.StartOfDay(ops[len(ops)-1].Base().Date, s.location)
	limit := timeline.AddIntervals(latest, business.IntervalYear, MaxHorizonYears, s.location)
	if timeline.DayCode(*to, s.location) > timeline.DayCode(limit, s.location) {
		return errors.Wrapf(ErrInvalidRange, "end %s is more than %d years after the latest operation (%s)",
			to.Format(business.DateLayout), MaxHorizonYears, latest.Format(business.DateLayout))
	}
	return nil
}

// Points returns the computed points of a timeline, optionally bounded
func (s *ProjectionService) Points(ctx context.Context, profile, timelineName string, from, to *time.Time, includePrevious bool) ([]timeline.ComputedDataPoint, error) {
	calc, err := s.calculator(ctx, profile, timelineName)
	if err != nil {
		return nil, err
	}
	if err := s.checkHorizon(calc, to); err != nil {
		return nil, err
	}

	var opts []timeline.RangeOption
	if includePrevious {
		opts = append(opts, timeline.IncludePrevious())
	}

	var points []timeline.ComputedDataPoint
	err = s.logger.WithTimeline(profile, timelineName).LogOperation("points", func() error {
		points, err = calc.ForRange(from, to, opts...)
		return err
	})
	return points, err
}

// AmountAt returns the projected balance of a timeline at date
func (s *ProjectionService) AmountAt(ctx context.Context, profile, timelineName string, date time.Time) (decimal.Decimal, error) {
	calc, err := s.calculator(ctx, profile, timelineName)
	if err != nil {
		return decimal.Zero, err
	}
	return calc.AmountAt(date)
}

// Series samples the balance of a timeline every stepDays from from to to, both included
func (s *ProjectionService) Series(ctx context.Context, profile, timelineName string, from, to time.Time, stepDays int) ([]business.BalanceSample, error) {
	if stepDays < 1 || stepDays > maxSeriesStepDays {
		return nil, errors.Wrapf(ErrInvalidRange, "step must be between 1 and %d days", maxSeriesStepDays)
	}
	if to.Before(from) {
		return nil, errors.Wrap(ErrInvalidRange, "end is before start")
	}

	start := timeline.StartOfDay(from, s.location)
	days := timeline.CountIntervals(start, to, business.IntervalDay, s.location)
	count := days/stepDays + 1
	if count > maxSeriesSamples {
		return nil, errors.Wrapf(ErrInvalidRange, "%d samples requested, at most %d allowed", count, maxSeriesSamples)
	}

	calc, err := s.calculator(ctx, profile, timelineName)
	if err != nil {
		return nil, err
	}

	samples := make([]business.BalanceSample, 0, count)
	for i := 0; i < count; i++ {
		date := timeline.AddIntervals(start, business.IntervalDay, i*stepDays, s.location)
		amount, err := calc.AmountAt(date)
		if err != nil {
			return nil, err
		}
		samples = append(samples, business.BalanceSample{Date: date, Amount: amount})
	}
	return samples, nil
}

// Chart lays out the points of a timeline for a chart of the given size
func (s *ProjectionService) Chart(ctx context.Context, profile, timelineName string, from, to *time.Time, dims chart.Dims) (*chart.Chart, error) {
	if from != nil && to != nil {
		if err := chart.CheckSpan(*from, *to, s.location); err != nil {
			return nil, errors.Wrap(ErrInvalidRange, err.Error())
		}
	}

	points, err := s.Points(ctx, profile, timelineName, from, to, true)
	if err != nil {
		return nil, err
	}

	c, err := chart.Build(points, from, to, dims, s.location)
	if err != nil {
		if errors.Is(err, chart.ErrUnsupportedSpan) {
			return nil, errors.Wrap(ErrInvalidRange, err.Error())
		}
		return nil, err
	}
	return c, nil
}

// Invalidate drops the cached calculator of a timeline. Loads already in
// flight for it will not be cached.
func (s *ProjectionService) Invalidate(profile, timelineName string) {
	key := cacheKey(profile, timelineName)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[key]++
	s.cache.Delete(key)
}
