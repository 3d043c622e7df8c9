package insight

import "github.com/julianstephens/momentum/internal/constants"

// Config holds the endpoint and model used for summaries
type Config struct {
	Endpoint string
	Model    string
}

// DefaultConfig targets the public Gemini API
func DefaultConfig() Config {
	return Config{
		Endpoint: constants.DefaultAIEndpoint,
		Model:    constants.DefaultAIModel,
	}
}

// WithOverrides returns cfg with any non-empty values replaced
func (c Config) WithOverrides(endpoint, model string) Config {
	if endpoint != "" {
		c.Endpoint = endpoint
	}
	if model != "" {
		c.Model = model
	}
	return c
}
