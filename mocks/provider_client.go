package mocks

import (
	"context"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/providers"
	"github.com/stretchr/testify/mock"
)

// ProviderClient is a testify mock for providers.Client.
type ProviderClient struct {
	mock.Mock
}

func NewProviderClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProviderClient {
	m := &ProviderClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProviderClient) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	args := m.Called(ctx, config, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	resp, ok := args.Get(0).(*providers.CompletionResponse)
	if !ok {
		return nil, args.Error(1)
	}
	return resp, args.Error(1)
}
