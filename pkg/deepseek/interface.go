package deepseek

import "context"

// IDeepSeek defines the interface for the DeepSeek LLM client
type IDeepSeek interface {
	GenerateText(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
