package content

// Config holds article generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	ImageCount  int
}

// DefaultConfig returns sensible defaults for article generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.7,
		ImageCount:  3,
	}
}
