package usecase

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"productivity-intelligence/internal/intelligence"
	"productivity-intelligence/internal/intelligence/classify"
	"productivity-intelligence/internal/intelligence/estimator"
	"productivity-intelligence/internal/intelligence/features"
	"productivity-intelligence/internal/intelligence/recommend"
	"productivity-intelligence/internal/model"
)

// Estimate runs the full scoring pipeline for one task. Any panic anywhere
// in the pipeline is converted into the per-category fallback result; the
// only error surfaced is cancellation of the caller's context.
func (uc *implUseCase) Estimate(ctx context.Context, sc model.Scope, input intelligence.EstimateInput) (out intelligence.EstimateOutput, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return intelligence.EstimateOutput{}, ctxErr
	}

	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "intelligence.Estimate: pipeline panic, returning fallback: %v", r)
			out = intelligence.EstimateOutput{Result: uc.fallbackResult(input, started)}
			err = nil
		}
	}()

	tc := model.TaskContext{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		UserID:      sc.UserID,
	}

	set := features.Extract(tc)
	scores := classify.Classify(set, tc.Priority)
	votes := uc.collectVotes(ctx, set, tc)
	est := estimator.Combine(votes)

	recs := uc.recommender.Generate(ctx, tc, scores.Complexity)

	result := intelligence.Result{
		EstimatedDuration:  maxInt(est.Minutes, 1),
		ComplexityScore:    scores.Complexity,
		CognitiveLoad:      scores.CognitiveLoad,
		Urgency:            scores.Urgency,
		Tags:               buildTags(set, tc, scores),
		SuggestedTimeSlots: recs.TimeSlots,
		OptimizationTips:   recs.Tips,
		Prerequisites:      recs.Prerequisites,
		RelatedTasks:       recs.RelatedTasks,
		EnsembleConfidence: est.Confidence,
		Processing: intelligence.ProcessingMeta{
			Timestamp: started,
			Methods:   est.Methods,
			ElapsedMs: time.Since(started).Milliseconds(),
		},
	}
	result.Confidence = inputConfidence(tc, est.Methods, result)

	return intelligence.EstimateOutput{Result: result}, nil
}

// collectVotes fans out to every provider concurrently. The I/O-bound
// providers carry their own timeouts; a panicking provider is treated as an
// abstention so one bad vote cannot sink the pipeline.
func (uc *implUseCase) collectVotes(ctx context.Context, set features.Set, tc model.TaskContext) []estimator.Vote {
	votes := make([]estimator.Vote, len(uc.providers))

	var wg sync.WaitGroup
	for i, p := range uc.providers {
		wg.Add(1)
		go func(i int, p estimator.Provider) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					uc.l.Warnf(ctx, "intelligence.collectVotes: provider %s panicked: %v", p.Name(), r)
					votes[i] = estimator.Vote{Method: p.Name()}
				}
			}()
			votes[i] = p.Estimate(ctx, set, tc)
		}(i, p)
	}
	wg.Wait()

	return votes
}

// inputConfidence scores how much the input itself can be trusted: richer
// titles, descriptions and metadata raise it independently of how well the
// estimators agreed.
func inputConfidence(tc model.TaskContext, methods []string, result intelligence.Result) float64 {
	conf := 0.5
	conf += 0.2 * math.Min(float64(len(tc.Title))/50, 1)
	conf += 0.3 * math.Min(float64(len(tc.Description))/200, 1)

	for _, m := range methods {
		if m == "historical" {
			conf += 0.1
			break
		}
	}

	if len(result.Tags) > 0 {
		conf += 0.1
	}
	if len(result.OptimizationTips) > 0 {
		conf += 0.1
	}
	if tc.Category != "" && tc.Category != model.CategoryGeneral {
		conf += 0.05
	}
	if tc.Priority != "" && tc.Priority != model.PriorityMedium {
		conf += 0.05
	}

	// With no text at all the metadata bonuses are not worth much: cap at
	// the base so callers can detect text-free inputs by confidence alone.
	if tc.Title == "" && tc.Description == "" {
		return math.Min(conf, 0.5)
	}

	return math.Min(conf, 0.95)
}

// buildTags derives a label set from the task's metadata and keyword hits.
func buildTags(set features.Set, tc model.TaskContext, scores classify.Scores) []string {
	tags := map[string]bool{}
	if tc.Category != "" {
		tags[string(tc.Category)] = true
	}
	if tc.Priority == model.PriorityHigh || tc.Priority == model.PriorityCritical {
		tags["high-priority"] = true
	}
	for _, fam := range []features.Family{
		features.FamilyTechnical,
		features.FamilyProblemSolving,
		features.FamilyCreative,
		features.FamilyDocumentation,
		features.FamilyProcess,
	} {
		if set.Hits(fam) > 0 {
			tags[string(fam)] = true
		}
	}
	if scores.Complexity >= 0.7 {
		tags["complex"] = true
	}

	out := make([]string, 0, len(tags))
	for t := range tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// fallbackResult is the fixed degraded answer: category-default duration,
// static recommendations, urgency from stated priority alone.
func (uc *implUseCase) fallbackResult(input intelligence.EstimateInput, started time.Time) intelligence.Result {
	minutes, _ := estimator.CategoryDefault(input.Category)
	recs := recommend.Static(input.Category, 0)

	urgency := classify.UrgencyMedium
	switch input.Priority {
	case model.PriorityLow:
		urgency = classify.UrgencyLow
	case model.PriorityHigh:
		urgency = classify.UrgencyHigh
	case model.PriorityCritical:
		urgency = classify.UrgencyCritical
	}

	return intelligence.Result{
		EstimatedDuration:  maxInt(int(minutes), 1),
		Urgency:            urgency,
		Tags:               []string{string(input.Category)},
		SuggestedTimeSlots: recs.TimeSlots,
		OptimizationTips:   recs.Tips,
		Prerequisites:      recs.Prerequisites,
		Confidence:         0.3,
		EnsembleConfidence: 0.3,
		Processing: intelligence.ProcessingMeta{
			Timestamp: started,
			Methods:   []string{"fallback"},
			ElapsedMs: time.Since(started).Milliseconds(),
		},
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
