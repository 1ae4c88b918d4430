package mocks

import (
	"context"

	"drivesort/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockOrganizer struct {
	mock.Mock
}

func (m *MockOrganizer) Run(ctx context.Context, rootFolderID string) (*model.RunSummary, error) {
	args := m.Called(ctx, rootFolderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RunSummary), args.Error(1)
}
