package services

import (
	"context"
	"time"

	"github.com/budget-planner/planner-api/libs/go/db"
	"github.com/budget-planner/planner-api/libs/go/helpers"
	"github.com/budget-planner/planner-api/libs/go/interfaces"
	"github.com/budget-planner/planner-api/libs/go/logger"
	"github.com/budget-planner/planner-api/libs/go/timeline"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ProfileService stores profiles, timelines and operations in Postgres
type ProfileService struct {
	queries  db.Querier
	pool     *pgxpool.Pool
	location *time.Location
	logger   *zap.Logger
}

var _ interfaces.ProfileStore = (*ProfileService)(nil)

// NewProfileService creates a new profile service. Multi-statement writes run
// in a transaction on pool; with a nil pool they run directly on queries.
// Operation dates are calendar days in loc.
func NewProfileService(queries db.Querier, pool *pgxpool.Pool, loc *time.Location) *ProfileService {
	if loc == nil {
		loc = time.Local
	}
	return &ProfileService{
		queries:  queries,
		pool:     pool,
		location: loc,
		logger:   logger.Log,
	}
}

func (s *ProfileService) withTx(ctx context.Context, fn func(q db.Querier) error) error {
	if s.pool == nil {
		return fn(s.queries)
	}
	return helpers.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}

func (s *ProfileService) getProfile(ctx context.Context, q db.Querier, name string) (db.Profile, error) {
	profile, err := q.GetProfileByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Profile{}, errors.Wrapf(ErrProfileNotFound, "profile %q", name)
		}
		s.logger.Error("Failed to get profile", zap.String("profile", name), zap.Error(err))
		return db.Profile{}, errors.Wrap(err, "failed to retrieve profile")
	}
	return profile, nil
}

// ListProfiles returns every profile name, flagging the default one
func (s *ProfileService) ListProfiles(ctx context.Context) ([]business.ProfileSummary, error) {
	profiles, err := s.queries.ListProfiles(ctx)
	if err != nil {
		s.logger.Error("Failed to list profiles", zap.Error(err))
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	summaries := make([]business.ProfileSummary, len(profiles))
	for i, p := range profiles {
		summaries[i] = business.ProfileSummary{Name: p.Name, IsDefault: p.IsDefault}
	}
	return summaries, nil
}

// CreateProfile creates a profile with an empty default timeline
func (s *ProfileService) CreateProfile(ctx context.Context, name string, asDefault bool) (*business.Profile, error) {
	if err := ValidateName("profile", name); err != nil {
		return nil, err
	}

	var created db.Profile
	var main db.Timeline
	err := s.withTx(ctx, func(q db.Querier) error {
		_, err := q.GetProfileByName(ctx, name)
		if err == nil {
			return errors.Wrapf(ErrProfileExists, "profile %q", name)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return errors.Wrap(err, "failed to check profile")
		}

		if asDefault {
			if err := q.ClearDefaultProfile(ctx); err != nil {
				return errors.Wrap(err, "failed to clear default profile")
			}
		}

		created, err = q.CreateProfile(ctx, db.CreateProfileParams{
			Name:      name,
			Version:   business.ProfileVersion,
			IsDefault: asDefault,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		main, err = q.CreateTimeline(ctx, db.CreateTimelineParams{
			ProfileID: created.ID,
			Name:      business.DefaultTimelineName,
		})
		return errors.Wrap(err, "failed to create default timeline")
	})
	if err != nil {
		if !errors.Is(err, ErrProfileExists) {
			s.logger.Error("Failed to create profile", zap.String("profile", name), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("Profile created",
		zap.String("profile_id", created.ID.String()),
		zap.String("profile", created.Name),
		zap.Bool("is_default", created.IsDefault))

	return &business.Profile{
		ID:        created.ID,
		Name:      created.Name,
		Version:   int(created.Version),
		IsDefault: created.IsDefault,
		Timelines: []business.Timeline{{ID: main.ID, Name: main.Name, Operations: []business.Operation{}}},
		CreatedAt: timestamp(created.CreatedAt),
		UpdatedAt: timestamp(created.UpdatedAt),
	}, nil
}

// GetProfile loads a profile with all of its timelines and operations
func (s *ProfileService) GetProfile(ctx context.Context, name string) (*business.Profile, error) {
	row, err := s.getProfile(ctx, s.queries, name)
	if err != nil {
		return nil, err
	}
	if row.Version != business.ProfileVersion {
		return nil, errors.Errorf("profile %q has unsupported version %d", name, row.Version)
	}

	timelines, err := s.queries.ListTimelinesByProfile(ctx, row.ID)
	if err != nil {
		s.logger.Error("Failed to list timelines", zap.String("profile", name), zap.Error(err))
		return nil, errors.Wrap(err, "failed to list timelines")
	}

	profile := &business.Profile{
		ID:        row.ID,
		Name:      row.Name,
		Version:   int(row.Version),
		IsDefault: row.IsDefault,
		Timelines: make([]business.Timeline, 0, len(timelines)),
		CreatedAt: timestamp(row.CreatedAt),
		UpdatedAt: timestamp(row.UpdatedAt),
	}
	for _, t := range timelines {
		ops, err := s.loadOperations(ctx, t)
		if err != nil {
			return nil, err
		}
		profile.Timelines = append(profile.Timelines, business.Timeline{ID: t.ID, Name: t.Name, Operations: ops})
	}
	return profile, nil
}

// DeleteProfile removes a profile together with its timelines
func (s *ProfileService) DeleteProfile(ctx context.Context, name string) error {
	err := s.withTx(ctx, func(q db.Querier) error {
		profile, err := s.getProfile(ctx, q, name)
		if err != nil {
			return err
		}
		return errors.Wrap(q.DeleteProfile(ctx, profile.ID), "failed to delete profile")
	})
	if err != nil {
		return err
	}

	s.logger.Info("Profile deleted", zap.String("profile", name))
	return nil
}

// SetDefaultProfile makes name the only default profile
func (s *ProfileService) SetDefaultProfile(ctx context.Context, name string) error {
	return s.withTx(ctx, func(q db.Querier) error {
		profile, err := s.getProfile(ctx, q, name)
		if err != nil {
			return err
		}
		if profile.IsDefault {
			return nil
		}
		if err := q.ClearDefaultProfile(ctx); err != nil {
			return errors.Wrap(err, "failed to clear default profile")
		}
		_, err = q.SetDefaultProfile(ctx, profile.ID)
		return errors.Wrap(err, "failed to set default profile")
	})
}

// ListOperations returns the stored operations of a timeline in date order
func (s *ProfileService) ListOperations(ctx context.Context, profile, timelineName string) ([]business.Operation, error) {
	p, err := s.getProfile(ctx, s.queries, profile)
	if err != nil {
		return nil, err
	}

	t, err := s.queries.GetTimeline(ctx, db.GetTimelineParams{ProfileID: p.ID, Name: timelineName})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(ErrTimelineNotFound, "timeline %q of profile %q", timelineName, profile)
		}
		return nil, errors.Wrap(err, "failed to retrieve timeline")
	}

	return s.loadOperations(ctx, t)
}

func (s *ProfileService) loadOperations(ctx context.Context, t db.Timeline) ([]business.Operation, error) {
	rows, err := s.queries.ListOperationsByTimeline(ctx, t.ID)
	if err != nil {
		s.logger.Error("Failed to list operations", zap.String("timeline_id", t.ID.String()), zap.Error(err))
		return nil, errors.Wrap(err, "failed to list operations")
	}

	ops := make([]business.Operation, 0, len(rows))
	for _, row := range rows {
		op, err := operationFromRow(row, s.location)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// SaveOperations replaces the operations of a timeline in one transaction.
// Operations are stored sorted by date, on their calendar day.
func (s *ProfileService) SaveOperations(ctx context.Context, profile, timelineName string, ops []business.Operation) error {
	if err := ValidateName("timeline", timelineName); err != nil {
		return err
	}
	sorted := timeline.Normalize(ops, s.location)

	err := s.withTx(ctx, func(q db.Querier) error {
		p, err := s.getProfile(ctx, q, profile)
		if err != nil {
			return err
		}

		t, err := q.GetTimeline(ctx, db.GetTimelineParams{ProfileID: p.ID, Name: timelineName})
		if errors.Is(err, pgx.ErrNoRows) {
			t, err = q.CreateTimeline(ctx, db.CreateTimelineParams{ProfileID: p.ID, Name: timelineName})
		}
		if err != nil {
			return errors.Wrap(err, "failed to resolve timeline")
		}

		if err := q.DeleteOperationsByTimeline(ctx, t.ID); err != nil {
			return errors.Wrap(err, "failed to clear operations")
		}
		for i, op := range sorted {
			if _, err := q.CreateOperation(ctx, operationParams(t.ID, i, op, s.location)); err != nil {
				return errors.Wrapf(err, "failed to store operation %d", i)
			}
		}
		return errors.Wrap(q.TouchTimeline(ctx, t.ID), "failed to update timeline")
	})
	if err != nil {
		s.logger.Error("Failed to save operations",
			zap.String("profile", profile),
			zap.String("timeline", timelineName),
			zap.Error(err))
		return err
	}

	s.logger.Info("Operations saved",
		zap.String("profile", profile),
		zap.String("timeline", timelineName),
		zap.Int("count", len(sorted)))
	return nil
}
