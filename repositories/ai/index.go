package AIRepository

import (
	"github.com/sashabaranov/go-openai"
)

type Repository struct {
	client *openai.Client
}

func NewRepository(apiKey string) *Repository {
	client := openai.NewClient(apiKey)
	return &Repository{
		client: client,
	}
}

// NewRepositoryWithBaseURL points the client at a different endpoint. Tests
// stand in a fake upstream this way, and deployments behind a proxy set
// OPENAI_BASE_URL to the same effect.
func NewRepositoryWithBaseURL(apiKey, baseURL string) *Repository {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return &Repository{
		client: openai.NewClientWithConfig(config),
	}
}

// Client returns the OpenAI client instance
func (r *Repository) Client() *openai.Client {
	return r.client
}
