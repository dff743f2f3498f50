package athletics

// Config holds configuration for the canonical results service.
type Config struct {
	// BaseURL is the root URL of the canonical results API.
	BaseURL string `mapstructure:"base_url" default:"https://worldathletics.nimarion.de"`
}
