package mocks

import (
	"context"

	"drivesort/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListChildren(ctx context.Context, parentID string) ([]model.Entry, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}

func (m *MockStore) FindFolders(ctx context.Context, name, parentID string) ([]model.Entry, error) {
	args := m.Called(ctx, name, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}

func (m *MockStore) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	args := m.Called(ctx, name, parentID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetParents(ctx context.Context, fileID string) ([]string, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) UpdateParents(ctx context.Context, fileID string, addParent string, removeParents []string) error {
	args := m.Called(ctx, fileID, addParent, removeParents)
	return args.Error(0)
}
