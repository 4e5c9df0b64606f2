// Package recommend maps a task onto suggested time slots, optimization
// tips, and prerequisites. A static per-category table is always available;
// an external generator can enrich it, but its output is advisory and any
// failure falls back to the table.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"productivity-intelligence/internal/model"
	"productivity-intelligence/pkg/llmprovider"
	"productivity-intelligence/pkg/log"
)

const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// Set is one recommendation bundle. TimeSlots only ever holds values from
// the Slot* constants.
type Set struct {
	TimeSlots     []string
	Tips          []string
	Prerequisites []string
	RelatedTasks  []string
}

var staticTable = map[model.Category]Set{
	model.CategoryPlanning: {
		TimeSlots:     []string{SlotMorning},
		Tips:          []string{"Start with a clear outcome in mind", "Time-box the planning itself"},
		Prerequisites: []string{"Review open work and priorities"},
	},
	model.CategoryCoding: {
		TimeSlots:     []string{SlotMorning, SlotAfternoon},
		Tips:          []string{"Block uninterrupted focus time", "Commit in small increments"},
		Prerequisites: []string{"Development environment ready", "Requirements understood"},
	},
	model.CategoryTesting: {
		TimeSlots:     []string{SlotAfternoon},
		Tips:          []string{"Write the failing case first", "Cover the edge cases you argued about"},
		Prerequisites: []string{"Feature implementation complete"},
	},
	model.CategoryDocumentation: {
		TimeSlots:     []string{SlotAfternoon, SlotEvening},
		Tips:          []string{"Write for the reader who has zero context", "Include a runnable example"},
		Prerequisites: []string{"The behavior being documented is stable"},
	},
	model.CategoryResearch: {
		TimeSlots:     []string{SlotMorning},
		Tips:          []string{"Define the question before searching", "Capture sources as you go"},
		Prerequisites: []string{},
	},
	model.CategoryMeeting: {
		TimeSlots:     []string{SlotMorning, SlotAfternoon},
		Tips:          []string{"Share an agenda beforehand", "End with assigned action items"},
		Prerequisites: []string{"Agenda prepared"},
	},
	model.CategoryReview: {
		TimeSlots:     []string{SlotAfternoon},
		Tips:          []string{"Review in one sitting while context is fresh"},
		Prerequisites: []string{"Work submitted for review"},
	},
	model.CategoryGeneral: {
		TimeSlots:     []string{SlotMorning, SlotAfternoon},
		Tips:          []string{"Break the task into smaller steps"},
		Prerequisites: []string{},
	},
}

var highComplexityTips = []string{
	"Split this into smaller subtasks before starting",
	"Schedule it for your peak-energy hours",
}

// Static returns the table entry for the category, adjusted for complexity.
// Unknown categories resolve to the general entry. Never returns an empty set.
func Static(category model.Category, complexity float64) Set {
	entry, ok := staticTable[category]
	if !ok {
		entry = staticTable[model.CategoryGeneral]
	}

	out := Set{
		TimeSlots:     append([]string(nil), entry.TimeSlots...),
		Tips:          append([]string(nil), entry.Tips...),
		Prerequisites: append([]string(nil), entry.Prerequisites...),
	}
	if complexity >= 0.7 {
		out.Tips = append(out.Tips, highComplexityTips...)
	}
	return out
}

// TextGenerator is the external generator consulted for task-specific
// recommendations. Satisfied by llmprovider.Manager.
type TextGenerator interface {
	GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

const generateTimeout = 5 * time.Second

const generateSystem = `You are a productivity assistant. Given a task, respond with JSON only:
{"timeSlots": ["morning"|"afternoon"|"evening", ...], "tips": [string, ...], "prerequisites": [string, ...], "relatedTasks": [string, ...]}
No prose, no markdown.`

// Generator produces recommendation sets, consulting an external generator
// when one is configured and degrading to the static table otherwise.
type Generator struct {
	gen TextGenerator
	l   log.Logger
}

func NewGenerator(gen TextGenerator, l log.Logger) *Generator {
	return &Generator{gen: gen, l: l}
}

// Generate returns recommendations for the task. The external generator's
// output replaces table fields only where it is well-formed and non-empty,
// so the result is never an empty set.
func (g *Generator) Generate(ctx context.Context, tc model.TaskContext, complexity float64) Set {
	static := Static(tc.Category, complexity)
	if g == nil || g.gen == nil {
		return static
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := g.gen.GenerateText(ctx, &llmprovider.Request{
		System:      generateSystem,
		Prompt:      buildPrompt(tc),
		Temperature: 0.4,
		MaxTokens:   512,
	})
	if err != nil {
		g.l.Warnf(ctx, "recommend.Generator.Generate: generator unavailable, using static table: %v", err)
		return static
	}

	enriched, err := parseGenerated(resp.Text)
	if err != nil {
		g.l.Warnf(ctx, "recommend.Generator.Generate: malformed generator output, using static table: %v", err)
		return static
	}

	return merge(static, enriched)
}

func buildPrompt(tc model.TaskContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n", tc.Title)
	if tc.Description != "" {
		fmt.Fprintf(&b, "Details: %s\n", tc.Description)
	}
	fmt.Fprintf(&b, "Category: %s\nPriority: %s\n", tc.Category, tc.Priority)
	return b.String()
}

type generatedPayload struct {
	TimeSlots     []string `json:"timeSlots"`
	Tips          []string `json:"tips"`
	Prerequisites []string `json:"prerequisites"`
	RelatedTasks  []string `json:"relatedTasks"`
}

var codeFenceRe = regexp.MustCompile("```(?:json)?")

func parseGenerated(text string) (Set, error) {
	cleaned := codeFenceRe.ReplaceAllString(text, "")
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return Set{}, fmt.Errorf("no JSON object in generator output")
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err != nil {
		return Set{}, fmt.Errorf("decode generator output: %w", err)
	}

	return Set{
		TimeSlots:     filterSlots(payload.TimeSlots),
		Tips:          payload.Tips,
		Prerequisites: payload.Prerequisites,
		RelatedTasks:  payload.RelatedTasks,
	}, nil
}

// filterSlots drops anything outside the known slot vocabulary.
func filterSlots(slots []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range slots {
		s = strings.ToLower(strings.TrimSpace(s))
		switch s {
		case SlotMorning, SlotAfternoon, SlotEvening:
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// merge overlays non-empty enriched fields onto the static set.
func merge(static, enriched Set) Set {
	out := static
	if len(enriched.TimeSlots) > 0 {
		out.TimeSlots = enriched.TimeSlots
	}
	if len(enriched.Tips) > 0 {
		out.Tips = enriched.Tips
	}
	if len(enriched.Prerequisites) > 0 {
		out.Prerequisites = enriched.Prerequisites
	}
	out.RelatedTasks = enriched.RelatedTasks
	return out
}
