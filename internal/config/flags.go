package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL (e.g. "http://localhost:8000")
//	-d local state database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-stream-idle-timeout chat stream idle timeout, 0 disables it
//	-refresh-interval background session/stats refresh interval
//	-model default model override
//	-max-output-tokens default reply token cap
//	-max-context-turns default history turn cap
func ParseFlags() *StructuredConfig {
	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var streamIdleTimeout time.Duration
	var refreshInterval time.Duration
	var model string
	var maxOutputTokens int
	var maxContextTurns int

	flag.StringVar(&baseURL, "a", "", "Backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local state database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&streamIdleTimeout, "stream-idle-timeout", 0, "Chat stream idle timeout, 0 disables")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval")
	flag.StringVar(&model, "model", "", "Default model override")
	flag.IntVar(&maxOutputTokens, "max-output-tokens", 0, "Default reply token cap")
	flag.IntVar(&maxContextTurns, "max-context-turns", 0, "Default history turn cap")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:           baseURL,
			RequestTimeout:    requestTimeout,
			StreamIdleTimeout: streamIdleTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Chat: Chat{
			Model:           model,
			MaxOutputTokens: maxOutputTokens,
			MaxContextTurns: maxContextTurns,
		},
		JSONFilePath: jsonConfigPath,
	}
}
