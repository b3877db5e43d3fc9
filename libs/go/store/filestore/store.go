// Package filestore keeps profiles as JSON documents in a directory, one file
// per profile, next to a preferences file naming the default profile.
package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/budget-planner/planner-api/libs/go/interfaces"
	"github.com/budget-planner/planner-api/libs/go/logger"
	"github.com/budget-planner/planner-api/libs/go/services"
	"github.com/budget-planner/planner-api/libs/go/timeline"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	profilesDir     = "profiles"
	preferencesFile = "preferences.json"
	documentExt     = ".json"
)

// profileNamespace seeds the stable ids derived from profile names
var profileNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("planner-api/filestore"))

type timelineDocument struct {
	Name       string                       `json:"name"`
	Operations []business.OperationDocument `json:"operations"`
}

type profileDocument struct {
	Version   int                `json:"version"`
	Timelines []timelineDocument `json:"timelines"`
}

type preferences struct {
	DefaultProfileName string `json:"defaultProfileName,omitempty"`
}

// Store is a ProfileStore over a directory
type Store struct {
	dir      string
	location *time.Location
	mu       sync.RWMutex
	logger   *logger.StructuredLogger
}

var _ interfaces.ProfileStore = (*Store)(nil)

// New creates a store rooted at dir. Operation dates are calendar days in loc.
func New(dir string, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		dir:      dir,
		location: loc,
		logger:   logger.NewStructuredLogger(logger.ComponentStore).WithField("dir", dir),
	}
}

func (s *Store) profilePath(name string) string {
	return filepath.Join(s.dir, profilesDir, EncodeProfileName(name)+documentExt)
}

// ListProfiles returns the stored profiles sorted by name
func (s *Store) ListProfiles(ctx context.Context) ([]business.ProfileSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.dir, profilesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []business.ProfileSummary{}, nil
		}
		return nil, errors.Wrap(err, "failed to read profiles directory")
	}

	prefs, err := s.readPreferences()
	if err != nil {
		return nil, err
	}

	summaries := make([]business.ProfileSummary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), documentExt) {
			continue
		}
		name, err := DecodeProfileName(strings.TrimSuffix(entry.Name(), documentExt))
		if err != nil {
			s.logger.WithField("file", entry.Name()).Warn("Skipping undecodable profile file")
			continue
		}
		summaries = append(summaries, business.ProfileSummary{
			Name:      name,
			IsDefault: name == prefs.DefaultProfileName,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

// CreateProfile writes a new profile holding an empty default timeline
func (s *Store) CreateProfile(ctx context.Context, name string, asDefault bool) (*business.Profile, error) {
	if err := services.ValidateName("profile", name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.profilePath(name)
	if _, err := os.Stat(path); err == nil {
		return nil, errors.Wrapf(services.ErrProfileExists, "profile %q", name)
	}

	doc := profileDocument{
		Version:   business.ProfileVersion,
		Timelines: []timelineDocument{{Name: business.DefaultTimelineName, Operations: []business.OperationDocument{}}},
	}
	if err := writeJSON(path, doc); err != nil {
		return nil, errors.Wrapf(err, "failed to write profile %q", name)
	}
	if asDefault {
		if err := s.writePreferences(preferences{DefaultProfileName: name}); err != nil {
			return nil, err
		}
	}

	s.logger.WithTimeline(name, "").WithField("is_default", asDefault).Info("Profile created")
	return s.loadProfile(name)
}

// GetProfile reads a profile document
func (s *Store) GetProfile(ctx context.Context, name string) (*business.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadProfile(name)
}

// DeleteProfile removes a profile document, clearing the default if it pointed to it
func (s *Store) DeleteProfile(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.profilePath(name)); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(services.ErrProfileNotFound, "profile %q", name)
		}
		return errors.Wrapf(err, "failed to delete profile %q", name)
	}

	prefs, err := s.readPreferences()
	if err != nil {
		return err
	}
	if prefs.DefaultProfileName == name {
		prefs.DefaultProfileName = ""
		if err := s.writePreferences(prefs); err != nil {
			return err
		}
	}

	s.logger.WithTimeline(name, "").Info("Profile deleted")
	return nil
}

// SetDefaultProfile records name as the default profile
func (s *Store) SetDefaultProfile(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.profilePath(name)); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(services.ErrProfileNotFound, "profile %q", name)
		}
		return errors.Wrapf(err, "failed to stat profile %q", name)
	}

	prefs, err := s.readPreferences()
	if err != nil {
		return err
	}
	prefs.DefaultProfileName = name
	return s.writePreferences(prefs)
}

// ListOperations returns the operations of one timeline of a profile
func (s *Store) ListOperations(ctx context.Context, profile, timelineName string) ([]business.Operation, error) {
	p, err := s.GetProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	t, ok := p.Timeline(timelineName)
	if !ok {
		return nil, errors.Wrapf(services.ErrTimelineNotFound, "timeline %q of profile %q", timelineName, profile)
	}
	return t.Operations, nil
}

// SaveOperations replaces the operations of a timeline, adding the timeline
// when the profile does not have it yet. Operations are written sorted by
// date, on their calendar day.
func (s *Store) SaveOperations(ctx context.Context, profile, timelineName string, ops []business.Operation) error {
	if err := services.ValidateName("timeline", timelineName); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.profilePath(profile)
	doc, err := readProfileDocument(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return errors.Wrapf(services.ErrProfileNotFound, "profile %q", profile)
		}
		return errors.Wrapf(err, "failed to read profile %q", profile)
	}

	sorted := timeline.Normalize(ops, s.location)

	updated := timelineDocument{Name: timelineName, Operations: business.ToDocuments(sorted)}
	replaced := false
	for i := range doc.Timelines {
		if doc.Timelines[i].Name == timelineName {
			doc.Timelines[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Timelines = append(doc.Timelines, updated)
	}

	if err := writeJSON(path, doc); err != nil {
		s.logger.WithTimeline(profile, timelineName).Error("Failed to save operations", err)
		return errors.Wrapf(err, "failed to write profile %q", profile)
	}

	s.logger.WithTimeline(profile, timelineName).WithField("count", len(sorted)).Info("Operations saved")
	return nil
}

func (s *Store) loadProfile(name string) (*business.Profile, error) {
	path := s.profilePath(name)
	doc, err := readProfileDocument(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(services.ErrProfileNotFound, "profile %q", name)
		}
		return nil, errors.Wrapf(err, "failed to read profile %q", name)
	}
	if doc.Version != business.ProfileVersion {
		return nil, errors.Errorf("profile %q has unsupported version %d", name, doc.Version)
	}

	prefs, err := s.readPreferences()
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat profile %q", name)
	}

	id := uuid.NewSHA1(profileNamespace, []byte(name))
	profile := &business.Profile{
		ID:        id,
		Name:      name,
		Version:   doc.Version,
		IsDefault: prefs.DefaultProfileName == name,
		Timelines: make([]business.Timeline, 0, len(doc.Timelines)),
		UpdatedAt: info.ModTime(),
	}
	for _, t := range doc.Timelines {
		ops, err := business.FromDocuments(t.Operations, s.location)
		if err != nil {
			return nil, errors.Wrapf(err, "profile %q timeline %q", name, t.Name)
		}
		profile.Timelines = append(profile.Timelines, business.Timeline{
			ID:         uuid.NewSHA1(id, []byte(t.Name)),
			Name:       t.Name,
			Operations: ops,
		})
	}
	return profile, nil
}

func (s *Store) readPreferences() (preferences, error) {
	var prefs preferences
	data, err := os.ReadFile(filepath.Join(s.dir, preferencesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, errors.Wrap(err, "failed to read preferences")
	}
	if len(data) == 0 {
		return prefs, nil
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return prefs, errors.Wrap(err, "failed to parse preferences")
	}
	return prefs, nil
}

func (s *Store) writePreferences(prefs preferences) error {
	return errors.Wrap(writeJSON(filepath.Join(s.dir, preferencesFile), prefs), "failed to write preferences")
}

func readProfileDocument(path string) (profileDocument, error) {
	var doc profileDocument
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, errors.WithStack(err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errors.Wrap(err, "failed to parse profile document")
	}
	return doc, nil
}

// writeJSON replaces path atomically through a temporary file in the same directory
func writeJSON(path string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
