package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-intelligence/config"
	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/middleware"
	"productivity-intelligence/internal/model"
	"productivity-intelligence/pkg/datemath"
	"productivity-intelligence/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	lastScope model.Scope
	lastFrom  time.Time
	lastTo    time.Time

	aggregateOut analytics.AggregateOutput
	reportOut    analytics.ReportOutput
	err          error
}

func (m *mockUseCase) Aggregate(ctx context.Context, sc model.Scope, input analytics.AggregateInput) (analytics.AggregateOutput, error) {
	m.lastScope = sc
	m.lastFrom, m.lastTo = input.From, input.To
	return m.aggregateOut, m.err
}

func (m *mockUseCase) Report(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.ReportOutput, error) {
	m.lastScope = sc
	m.lastFrom, m.lastTo = input.From, input.To
	return m.reportOut, m.err
}

func newTestRouter(t *testing.T, uc analytics.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	r := gin.New()
	h := New(&mockLogger{}, uc, parser)
	mw := middleware.New(&mockLogger{}, config.SecurityConfig{})
	RegisterRoutes(r.Group("/api/v1/analytics"), h, mw)
	return r
}

func TestSummaryHandler(t *testing.T) {
	t.Run("defaults to trailing week", func(t *testing.T) {
		uc := &mockUseCase{
			aggregateOut: analytics.AggregateOutput{
				Snapshot: analytics.UserAnalytics{UserID: "user-1"},
			},
		}
		r := newTestRouter(t, uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		if uc.lastScope.UserID != "user-1" {
			t.Errorf("scope user = %q, want user-1", uc.lastScope.UserID)
		}
		window := uc.lastTo.Sub(uc.lastFrom)
		if window < 6*24*time.Hour || window > 8*24*time.Hour {
			t.Errorf("default window = %v, want about 7 days", window)
		}
	})

	t.Run("parses absolute bounds and extends to end of day", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(t, uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/user-1?from=2026-03-01&to=2026-03-07", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		wantFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		if !uc.lastFrom.Equal(wantFrom) {
			t.Errorf("from = %v, want %v", uc.lastFrom, wantFrom)
		}
		if uc.lastTo.Hour() != 23 || uc.lastTo.Minute() != 59 {
			t.Errorf("to = %v, want end of day", uc.lastTo)
		}
	})

	t.Run("accepts relative bounds", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(t, uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/user-1?from=yesterday", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		wantDay := time.Now().UTC().AddDate(0, 0, -1).Day()
		if uc.lastFrom.Day() != wantDay {
			t.Errorf("from day = %d, want %d", uc.lastFrom.Day(), wantDay)
		}
	})

	t.Run("maps missing user to 400", func(t *testing.T) {
		uc := &mockUseCase{err: analytics.ErrMissingUser}
		r := newTestRouter(t, uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestReportHandler(t *testing.T) {
	t.Run("renders report payload", func(t *testing.T) {
		uc := &mockUseCase{
			reportOut: analytics.ReportOutput{
				Report: analytics.Report{
					Summary:      "Completed 4 of 5 tasks.",
					Achievements: []string{"sharp-estimator"},
					Trends: []analytics.TrendDelta{
						{Metric: "productivityScore", Previous: 0.5, Current: 0.8, Delta: 0.3, Direction: "up"},
					},
				},
				Snapshot: analytics.UserAnalytics{UserID: "user-1"},
			},
		}
		r := newTestRouter(t, uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/user-1/report", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		data, _ := json.Marshal(resp.Data)
		var out reportResp
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("unmarshal data: %v", err)
		}
		if out.Summary == "" || len(out.Trends) != 1 || out.Trends[0].Direction != "up" {
			t.Errorf("report = %+v", out)
		}
	})
}
