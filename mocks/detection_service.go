package mocks

import (
	"context"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/detection"
	"github.com/stretchr/testify/mock"
)

// DetectionService is a testify mock for detection.Service.
type DetectionService struct {
	mock.Mock
}

func NewDetectionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *DetectionService {
	m := &DetectionService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DetectionService) Analyze(ctx context.Context, text string) (*detection.Analysis, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	analysis, ok := args.Get(0).(*detection.Analysis)
	if !ok {
		return nil, args.Error(1)
	}
	return analysis, args.Error(1)
}
