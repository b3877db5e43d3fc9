package business

import (
	"time"

	"github.com/google/uuid"
)

// ProfileVersion is the only profile document version understood
const ProfileVersion = 1

// DefaultTimelineName is used when a profile is created without timelines
const DefaultTimelineName = "main"

// Timeline is a named list of operations inside a profile
type Timeline struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Operations []Operation `json:"-"`
}

// Profile groups the timelines of one user-facing budget
type Profile struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Version   int        `json:"version"`
	IsDefault bool       `json:"is_default"`
	Timelines []Timeline `json:"timelines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Timeline returns the timeline called name, if any
func (p *Profile) Timeline(name string) (*Timeline, bool) {
	for i := range p.Timelines {
		if p.Timelines[i].Name == name {
			return &p.Timelines[i], true
		}
	}
	return nil, false
}

// ProfileSummary is the listing entry of a profile
type ProfileSummary struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}
