package http

import (
	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/pkg/response"
)

func (r rangeReq) toAggregateInput() analytics.AggregateInput {
	return analytics.AggregateInput{From: r.from, To: r.to}
}

func (r rangeReq) toReportInput() analytics.ReportInput {
	return analytics.ReportInput{From: r.from, To: r.to}
}

// --- Response DTOs ---

type metricsResp struct {
	TotalTasks         int     `json:"total_tasks"`
	CompletedTasks     int     `json:"completed_tasks"`
	TotalTimeSpent     float64 `json:"total_time_spent"`
	AverageTimePerTask float64 `json:"average_time_per_task"`
	TasksPerDay        float64 `json:"tasks_per_day"`
	FocusTime          float64 `json:"focus_time"`
	BreakTime          float64 `json:"break_time"`
	ProductivityScore  float64 `json:"productivity_score"`
	EstimationAccuracy float64 `json:"estimation_accuracy"`
}

type patternResp struct {
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Strength    float64        `json:"strength"`
	Confidence  float64        `json:"confidence"`
	Data        map[string]any `json:"data,omitempty"`
}

type recommendationResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Effort      string `json:"effort"`
}

type distributionResp struct {
	ByCategory  map[string]float64 `json:"by_category"`
	ByHour      map[int]float64    `json:"by_hour"`
	ByDayOfWeek map[string]float64 `json:"by_day_of_week"`
}

type efficiencyResp struct {
	Overall        float64 `json:"overall"`
	Estimation     float64 `json:"estimation"`
	Focus          float64 `json:"focus"`
	Consistency    float64 `json:"consistency"`
	TimeManagement float64 `json:"time_management"`
}

type snapshotResp struct {
	ID              string               `json:"id"`
	UserID          string               `json:"user_id"`
	From            response.DateTime    `json:"from"`
	To              response.DateTime    `json:"to"`
	Metrics         metricsResp          `json:"metrics"`
	Patterns        []patternResp        `json:"patterns"`
	Recommendations []recommendationResp `json:"recommendations"`
	Distribution    distributionResp     `json:"distribution"`
	Efficiency      efficiencyResp       `json:"efficiency"`
	LastUpdated     response.DateTime    `json:"last_updated"`
}

func newSnapshotResp(s analytics.UserAnalytics) snapshotResp {
	patterns := make([]patternResp, len(s.Patterns))
	for i, p := range s.Patterns {
		patterns[i] = patternResp{
			Type:        p.Type,
			Description: p.Description,
			Strength:    p.Strength,
			Confidence:  p.Confidence,
			Data:        p.Data,
		}
	}
	recs := make([]recommendationResp, len(s.Recommendations))
	for i, r := range s.Recommendations {
		recs[i] = recommendationResp{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Impact:      r.Impact,
			Effort:      r.Effort,
		}
	}
	return snapshotResp{
		ID:     s.ID,
		UserID: s.UserID,
		From:   response.DateTime(s.From),
		To:     response.DateTime(s.To),
		Metrics: metricsResp{
			TotalTasks:         s.Metrics.TotalTasks,
			CompletedTasks:     s.Metrics.CompletedTasks,
			TotalTimeSpent:     s.Metrics.TotalTimeSpent,
			AverageTimePerTask: s.Metrics.AverageTimePerTask,
			TasksPerDay:        s.Metrics.TasksPerDay,
			FocusTime:          s.Metrics.FocusTime,
			BreakTime:          s.Metrics.BreakTime,
			ProductivityScore:  s.Metrics.ProductivityScore,
			EstimationAccuracy: s.Metrics.EstimationAccuracy,
		},
		Patterns:        patterns,
		Recommendations: recs,
		Distribution: distributionResp{
			ByCategory:  s.Distribution.ByCategory,
			ByHour:      s.Distribution.ByHour,
			ByDayOfWeek: s.Distribution.ByDayOfWeek,
		},
		Efficiency: efficiencyResp{
			Overall:        s.Efficiency.Overall,
			Estimation:     s.Efficiency.Estimation,
			Focus:          s.Efficiency.Focus,
			Consistency:    s.Efficiency.Consistency,
			TimeManagement: s.Efficiency.TimeManagement,
		},
		LastUpdated: response.DateTime(s.LastUpdated),
	}
}

type summaryResp struct {
	Snapshot snapshotResp `json:"snapshot"`
	Cached   bool         `json:"cached"`
}

func (h *handler) newSummaryResp(out analytics.AggregateOutput) summaryResp {
	return summaryResp{
		Snapshot: newSnapshotResp(out.Snapshot),
		Cached:   out.Cached,
	}
}

type trendResp struct {
	Metric    string  `json:"metric"`
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"`
}

type reportResp struct {
	Summary      string       `json:"summary"`
	Insights     []string     `json:"insights"`
	Trends       []trendResp  `json:"trends"`
	Achievements []string     `json:"achievements"`
	Snapshot     snapshotResp `json:"snapshot"`
}

func (h *handler) newReportResp(out analytics.ReportOutput) reportResp {
	trends := make([]trendResp, len(out.Report.Trends))
	for i, t := range out.Report.Trends {
		trends[i] = trendResp{
			Metric:    t.Metric,
			Previous:  t.Previous,
			Current:   t.Current,
			Delta:     t.Delta,
			Direction: t.Direction,
		}
	}
	return reportResp{
		Summary:      out.Report.Summary,
		Insights:     out.Report.Insights,
		Trends:       trends,
		Achievements: out.Report.Achievements,
		Snapshot:     newSnapshotResp(out.Snapshot),
	}
}
