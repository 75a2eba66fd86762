package provider

// Config holds configuration for the remote voice provider API.
type Config struct {
	// BaseURL is the root URL of the provider API.
	BaseURL string `mapstructure:"base_url" default:"https://api.elevenlabs.io"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// SyncDelayMS is the pause between consecutive provider calls within one
	// fan-out or retry batch, protecting the provider's rate limits.
	SyncDelayMS int `mapstructure:"sync_delay_ms" default:"1000"`
}
