// Package config defines service configuration and layered loading.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// GoogleAPIKey authenticates against the Gemini API. Also read from
	// the bare GOOGLE_API_KEY variable for compatibility with existing
	// deployments.
	GoogleAPIKey string `koanf:"google_api_key"`

	// Models overrides the decoder's candidate model list.
	Models []string `koanf:"models"`

	// RequestTimeoutMS bounds each upstream decode call.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// MaxUploadBytes caps the multipart upload size.
	MaxUploadBytes int `koanf:"max_upload_bytes"`

	// MaxImageSide is the longest image side sent upstream; larger
	// uploads are downscaled first.
	MaxImageSide int `koanf:"max_image_side"`

	// Temperature for the vision model.
	Temperature float64 `koanf:"temperature"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8080",
		RequestTimeoutMS: 40_000,
		MaxUploadBytes:   10 << 20,
		MaxImageSide:     1024,
		Temperature:      0.2,
	}
}
