package factory

import (
	"fmt"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/providers"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/providers/anthropic"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/providers/gemini"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/providers/openai"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

type ProviderLocator interface {
	Get(provider string, apiKey string) (providers.Client, error)
}

type providerLocator struct{}

func NewProviderLocator() ProviderLocator {
	return &providerLocator{}
}

func (f *providerLocator) Get(provider string, apiKey string) (providers.Client, error) {
	switch provider {
	case ProviderOpenAI:
		return openai.NewOpenaiClient(), nil
	case ProviderAnthropic:
		return anthropic.NewAnthropicClient(), nil
	case ProviderGemini:
		return gemini.NewGeminiClient(apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
