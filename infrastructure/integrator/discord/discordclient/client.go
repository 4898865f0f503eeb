package discordclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/metrics-relay/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	Send(ctx context.Context, msg WebhookMessage) error
}

// WebhookMessage é o corpo aceito pelo webhook do Discord
type WebhookMessage struct {
	Content string `json:"content"`
}

type DiscordClient struct {
	httpClient *http.Client
	webhookURL string
}

func NewClient(cfg *config.Config) Client {
	return &DiscordClient{
		httpClient: &http.Client{
			Timeout: cfg.Discord.Timeout,
		},
		webhookURL: cfg.Discord.WebhookURL,
	}
}
