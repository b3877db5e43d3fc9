package services

import "github.com/pkg/errors"

// Sentinel errors shared by every ProfileStore implementation
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProfileExists    = errors.New("profile already exists")
	ErrTimelineNotFound = errors.New("timeline not found")
	ErrInvalidName      = errors.New("invalid name")
	ErrInvalidRange     = errors.New("invalid range")
)

// ValidateName checks a profile or timeline name
func ValidateName(kind, name string) error {
	if name == "" {
		return errors.Wrapf(ErrInvalidName, "%s name is required", kind)
	}
	if len(name) > 128 {
		return errors.Wrapf(ErrInvalidName, "%s name is longer than 128 characters", kind)
	}
	return nil
}
