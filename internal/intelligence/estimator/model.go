package estimator

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"productivity-intelligence/internal/intelligence/features"
	"productivity-intelligence/internal/model"
	"productivity-intelligence/pkg/llmprovider"
	"productivity-intelligence/pkg/log"
)

const (
	modelMinMinutes    = 5
	modelMaxMinutes    = 240
	modelMinConfidence = 0.1
	modelMaxConfidence = 0.9

	// defaults used when the model call or its output cannot be used
	modelDefaultMinutes    = 25
	modelDefaultConfidence = 0.4

	modelTimeout     = 5 * time.Second
	modelTemperature = 0.2
	modelMaxTokens   = 256
)

// TextGenerator is the slice of the LLM provider manager the estimator
// needs. *llmprovider.Manager satisfies it.
type TextGenerator interface {
	GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

const estimatePromptSystem = `You are a task duration estimator. ` +
	`Respond with a single JSON object: {"minutes": <integer>, "confidence": <0..1>}. No prose.`

// ModelProvider asks an external language model for a duration estimate.
// The model is one vote among several and is never trusted blindly: its
// output is clamped to a sane band, and any transport or parse failure
// yields the fixed default vote instead of an error.
type ModelProvider struct {
	gen TextGenerator
	l   log.Logger
}

// NewModelProvider creates the external-model provider. A nil generator is
// allowed and makes the provider always vote its default.
func NewModelProvider(gen TextGenerator, l log.Logger) *ModelProvider {
	return &ModelProvider{gen: gen, l: l}
}

func (p *ModelProvider) Name() string { return "model" }

func (p *ModelProvider) Estimate(ctx context.Context, set features.Set, tc model.TaskContext) Vote {
	fallback := Vote{Minutes: modelDefaultMinutes, Confidence: modelDefaultConfidence, Method: p.Name()}

	if p.gen == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, modelTimeout)
	defer cancel()

	resp, err := p.gen.GenerateText(ctx, &llmprovider.Request{
		System:      estimatePromptSystem,
		Prompt:      buildEstimatePrompt(tc),
		Temperature: modelTemperature,
		MaxTokens:   modelMaxTokens,
	})
	if err != nil {
		p.l.Warnf(ctx, "model provider: generation failed (using default vote): %v", err)
		return fallback
	}

	minutes, confidence, err := parseEstimate(resp.Text)
	if err != nil {
		p.l.Warnf(ctx, "model provider: unparseable output %q (using default vote): %v", resp.Text, err)
		return fallback
	}

	return Vote{
		Minutes:    math.Max(modelMinMinutes, math.Min(minutes, modelMaxMinutes)),
		Confidence: math.Max(modelMinConfidence, math.Min(confidence, modelMaxConfidence)),
		Method:     p.Name(),
	}
}

func buildEstimatePrompt(tc model.TaskContext) string {
	var sb strings.Builder
	sb.WriteString("Estimate how many minutes this task will take.\n\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", tc.Title))
	if tc.Description != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", tc.Description))
	}
	sb.WriteString(fmt.Sprintf("Category: %s\nPriority: %s\n", tc.Category, tc.Priority))
	return sb.String()
}

type estimatePayload struct {
	Minutes    float64 `json:"minutes"`
	Confidence float64 `json:"confidence"`
}

// parseEstimate extracts the (minutes, confidence) pair from free-form
// model output.
func parseEstimate(text string) (float64, float64, error) {
	var payload estimatePayload
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), &payload); err != nil {
		return 0, 0, fmt.Errorf("invalid estimate JSON: %w", err)
	}
	if payload.Minutes <= 0 {
		return 0, 0, fmt.Errorf("non-positive minutes %v", payload.Minutes)
	}
	return payload.Minutes, payload.Confidence, nil
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
