package webclient

// Config holds configuration for outbound HTTP requests.
type Config struct {
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent on every outbound request.
	UserAgent string `mapstructure:"user_agent" default:"head2head/1.0"`
}
