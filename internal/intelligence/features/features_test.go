package features_test

import (
	"testing"

	"productivity-intelligence/internal/intelligence/features"
	"productivity-intelligence/internal/model"
)

func TestExtract(t *testing.T) {
	t.Run("empty text yields all-zero features", func(t *testing.T) {
		set := features.Extract(model.TaskContext{})

		if set.WordCount != 0 || set.TitleLen != 0 || set.DescLen != 0 {
			t.Errorf("expected zero counts, got %+v", set)
		}
		for _, f := range []features.Family{
			features.FamilyTechnical, features.FamilyProblemSolving,
			features.FamilyCreative, features.FamilyDocumentation,
			features.FamilyProcess, features.FamilyUrgent,
		} {
			if set.Hits(f) != 0 {
				t.Errorf("expected 0 hits for %s, got %d", f, set.Hits(f))
			}
		}
	})

	t.Run("technical keywords are counted case-insensitively", func(t *testing.T) {
		set := features.Extract(model.TaskContext{
			Title:       "Implement OAuth integration",
			Description: "Add secure login with refresh tokens",
		})

		if set.Hits(features.FamilyTechnical) < 3 {
			t.Errorf("expected >=3 technical hits, got %d", set.Hits(features.FamilyTechnical))
		}
		if set.TitleLen != len("Implement OAuth integration") {
			t.Errorf("unexpected title length %d", set.TitleLen)
		}
		if set.WordCount != 9 {
			t.Errorf("expected 9 words, got %d", set.WordCount)
		}
	})

	t.Run("urgent phrasing hits the urgent family", func(t *testing.T) {
		set := features.Extract(model.TaskContext{
			Title:       "Hotfix release",
			Description: "Urgent blocker, ship ASAP before the deadline",
		})

		if set.Hits(features.FamilyUrgent) < 3 {
			t.Errorf("expected >=3 urgent hits, got %d", set.Hits(features.FamilyUrgent))
		}
	})
}
