package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockProfileStoreForTest creates a new mock ProfileStore for testing
func NewMockProfileStoreForTest(t *testing.T) *MockProfileStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockProfileStore(ctrl)
}

// NewMockProjectionServiceForTest creates a new mock ProjectionService for testing
func NewMockProjectionServiceForTest(t *testing.T) *MockProjectionService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockProjectionService(ctrl)
}
