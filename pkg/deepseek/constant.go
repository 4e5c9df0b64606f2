package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// DefaultTimeout bounds one completion call. Estimation prompts ask
	// for short structured output, so long generations are never expected.
	DefaultTimeout = 30 * time.Second
)
