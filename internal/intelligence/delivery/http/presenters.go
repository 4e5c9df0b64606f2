package http

import (
	"time"

	"productivity-intelligence/internal/intelligence"
	"productivity-intelligence/internal/model"
)

// --- Request DTOs ---

type taskReq struct {
	Title       string `json:"title"       binding:"max=500"`
	Description string `json:"description" binding:"max=5000"`
	Category    string `json:"category"    binding:"omitempty,oneof=planning coding testing documentation research meeting review general"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=low medium high critical"`
}

func (r taskReq) toInput() intelligence.EstimateInput {
	category := r.Category
	if category == "" {
		category = string(model.CategoryGeneral)
	}
	priority := r.Priority
	if priority == "" {
		priority = string(model.PriorityMedium)
	}
	return intelligence.EstimateInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    model.Category(category),
		Priority:    model.Priority(priority),
	}
}

type estimateReq struct {
	taskReq
}

func (r estimateReq) validate() error { return nil }

// ---

type batchReq struct {
	Tasks []taskReq `json:"tasks"`
}

func (r batchReq) validate() error { return nil }

func (r batchReq) toInput() intelligence.BatchInput {
	tasks := make([]intelligence.EstimateInput, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = t.toInput()
	}
	return intelligence.BatchInput{Tasks: tasks}
}

// ---

type scheduleReq struct {
	Title           string `json:"title"            binding:"required,max=500"`
	Description     string `json:"description"      binding:"max=5000"`
	Slot            string `json:"slot"             binding:"required"`
	Date            string `json:"date"             binding:"required"` // YYYY-MM-DD
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`

	date time.Time
}

func (r scheduleReq) toInput() intelligence.ScheduleInput {
	return intelligence.ScheduleInput{
		Title:           r.Title,
		Description:     r.Description,
		Slot:            r.Slot,
		Date:            r.date,
		DurationMinutes: r.DurationMinutes,
	}
}

// --- Response DTOs ---

type processingResp struct {
	Timestamp time.Time `json:"timestamp"`
	Methods   []string  `json:"methods"`
	ElapsedMs int64     `json:"elapsed_ms"`
}

type resultResp struct {
	EstimatedDuration  int            `json:"estimated_duration"`
	ComplexityScore    float64        `json:"complexity_score"`
	CognitiveLoad      float64        `json:"cognitive_load"`
	Urgency            string         `json:"urgency"`
	Tags               []string       `json:"tags"`
	SuggestedTimeSlots []string       `json:"suggested_time_slots"`
	OptimizationTips   []string       `json:"optimization_tips"`
	Prerequisites      []string       `json:"prerequisites"`
	RelatedTasks       []string       `json:"related_tasks"`
	Confidence         float64        `json:"confidence"`
	EnsembleConfidence float64        `json:"ensemble_confidence"`
	Processing         processingResp `json:"processing"`
}

func newResultResp(r intelligence.Result) resultResp {
	return resultResp{
		EstimatedDuration:  r.EstimatedDuration,
		ComplexityScore:    r.ComplexityScore,
		CognitiveLoad:      r.CognitiveLoad,
		Urgency:            r.Urgency,
		Tags:               r.Tags,
		SuggestedTimeSlots: r.SuggestedTimeSlots,
		OptimizationTips:   r.OptimizationTips,
		Prerequisites:      r.Prerequisites,
		RelatedTasks:       r.RelatedTasks,
		Confidence:         r.Confidence,
		EnsembleConfidence: r.EnsembleConfidence,
		Processing: processingResp{
			Timestamp: r.Processing.Timestamp,
			Methods:   r.Processing.Methods,
			ElapsedMs: r.Processing.ElapsedMs,
		},
	}
}

type estimateResp struct {
	Result resultResp `json:"result"`
}

func (h *handler) newEstimateResp(out intelligence.EstimateOutput) estimateResp {
	return estimateResp{Result: newResultResp(out.Result)}
}

type batchItemResp struct {
	Index  int        `json:"index"`
	Result resultResp `json:"result"`
}

type batchResp struct {
	Items []batchItemResp `json:"items"`
	Count int             `json:"count"`
}

func (h *handler) newBatchResp(out intelligence.BatchOutput) batchResp {
	items := make([]batchItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = batchItemResp{
			Index:  item.Index,
			Result: newResultResp(item.Result),
		}
	}
	return batchResp{Items: items, Count: out.Count}
}

type scheduleResp struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	EventID   string    `json:"event_id,omitempty"`
	EventLink string    `json:"event_link,omitempty"`
}

func (h *handler) newScheduleResp(out intelligence.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Start:     out.Start,
		End:       out.End,
		EventID:   out.EventID,
		EventLink: out.EventLink,
	}
}
