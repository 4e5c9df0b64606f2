// Package features turns raw task text into the normalized signals consumed
// by the classifier and the estimator providers. Extraction is a pure
// function: no I/O, no failure mode, empty text yields all-zero features.
package features

import (
	"strings"

	"productivity-intelligence/internal/model"
)

// Family identifies one keyword dictionary.
type Family string

const (
	FamilyTechnical      Family = "technical"
	FamilyProblemSolving Family = "problem_solving"
	FamilyCreative       Family = "creative"
	FamilyDocumentation  Family = "documentation"
	FamilyProcess        Family = "process"
	FamilyUrgent         Family = "urgent"
)

// keyword dictionaries: matched as substrings over the lower-cased
// concatenation of title and description.
var dictionaries = map[Family][]string{
	FamilyTechnical: {
		"implement", "code", "debug", "refactor", "deploy", "integrat",
		"api", "database", "migrat", "secure", "auth", "algorithm",
		"optimize", "backend", "frontend", "infra",
	},
	FamilyProblemSolving: {
		"fix", "solve", "investigate", "troubleshoot", "analyze",
		"diagnose", "root cause", "issue", "bug",
	},
	FamilyCreative: {
		"design", "brainstorm", "prototype", "sketch", "draft",
		"concept", "mockup", "wireframe",
	},
	FamilyDocumentation: {
		"document", "write up", "readme", "spec", "manual", "guide",
		"notes", "summary",
	},
	FamilyProcess: {
		"plan", "organize", "coordinate", "schedule", "review",
		"checklist", "steps", "workflow",
	},
	FamilyUrgent: {
		"urgent", "asap", "immediately", "deadline", "today",
		"critical", "blocker", "emergency",
	},
}

// Set holds the extracted signals for one task.
type Set struct {
	WordCount   int
	TitleLen    int
	DescLen     int
	KeywordHits map[Family]int
}

// Hits returns the hit count for a keyword family (zero when absent).
func (s Set) Hits(f Family) int {
	return s.KeywordHits[f]
}

// Extract computes the feature set for a task context.
func Extract(tc model.TaskContext) Set {
	text := strings.ToLower(tc.Title + " " + tc.Description)

	hits := make(map[Family]int, len(dictionaries))
	for family, words := range dictionaries {
		count := 0
		for _, w := range words {
			count += strings.Count(text, w)
		}
		hits[family] = count
	}

	return Set{
		WordCount:   len(strings.Fields(text)),
		TitleLen:    len(tc.Title),
		DescLen:     len(tc.Description),
		KeywordHits: hits,
	}
}
