package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/officetool-client/models"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the officetool backend base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound non-streaming
	// requests.
	RequestTimeout time.Duration
	// StreamIdleTimeout bounds stream silence; zero means no bound.
	StreamIdleTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the session list and usage stats
	// are refreshed from the backend.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains backend address and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Chat contains the default per-run chat settings.
	Chat models.ChatSettings
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, fills conservative defaults for anything
// left unset, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	chat := models.DefaultChatSettings()
	chat.Model = cfg.Chat.Model
	if cfg.Chat.MaxOutputTokens != 0 {
		chat.MaxOutputTokens = cfg.Chat.MaxOutputTokens
	}
	if cfg.Chat.MaxContextTurns != 0 {
		chat.MaxContextTurns = cfg.Chat.MaxContextTurns
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:           cfg.Adapter.BaseURL,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			StreamIdleTimeout: cfg.Adapter.StreamIdleTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Chat:    chat,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8000"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 30 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "officetool.db"
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = 30 * time.Second
	}
}
