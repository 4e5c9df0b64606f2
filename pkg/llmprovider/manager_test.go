package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"productivity-intelligence/pkg/llmprovider"
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

type mockProvider struct {
	name     string
	failures int // fail this many calls before succeeding
	calls    int
	text     string
}

func (m *mockProvider) GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	if m.calls <= m.failures {
		return nil, errors.New("transient error")
	}
	return &llmprovider.Response{
		Text:         m.text,
		ProviderName: m.name,
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "mock-model" }

func newManager(cfg *llmprovider.Config, providers ...llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager(providers, cfg, &mockLogger{})
}

func TestManagerGenerateText(t *testing.T) {
	cfg := &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: time.Second,
	}

	t.Run("first provider succeeds", func(t *testing.T) {
		first := &mockProvider{name: "gemini", text: "ok"}
		second := &mockProvider{name: "deepseek", text: "nope"}

		resp, err := newManager(cfg, first, second).GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "gemini" {
			t.Errorf("expected gemini, got %s", resp.ProviderName)
		}
		if second.calls != 0 {
			t.Errorf("fallback provider should not be called, got %d calls", second.calls)
		}
	})

	t.Run("retry within one provider", func(t *testing.T) {
		flaky := &mockProvider{name: "gemini", failures: 1, text: "ok"}

		resp, err := newManager(cfg, flaky).GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flaky.calls != 2 {
			t.Errorf("expected 2 calls, got %d", flaky.calls)
		}
		if resp.Text != "ok" {
			t.Errorf("unexpected text %q", resp.Text)
		}
	})

	t.Run("falls back to next provider", func(t *testing.T) {
		dead := &mockProvider{name: "gemini", failures: 99}
		alive := &mockProvider{name: "deepseek", text: "rescued"}

		resp, err := newManager(cfg, dead, alive).GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "deepseek" {
			t.Errorf("expected deepseek, got %s", resp.ProviderName)
		}
	})

	t.Run("all providers fail", func(t *testing.T) {
		dead1 := &mockProvider{name: "gemini", failures: 99}
		dead2 := &mockProvider{name: "deepseek", failures: 99}

		_, err := newManager(cfg, dead1, dead2).GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("fallback disabled stops after first provider", func(t *testing.T) {
		noFallback := &llmprovider.Config{RetryAttempts: 1, RetryDelay: time.Millisecond}
		dead := &mockProvider{name: "gemini", failures: 99}
		alive := &mockProvider{name: "deepseek", text: "unused"}

		_, err := newManager(noFallback, dead, alive).GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
		if err == nil {
			t.Fatal("expected error")
		}
		if alive.calls != 0 {
			t.Errorf("fallback provider called despite fallback disabled")
		}
	})

	t.Run("no providers configured", func(t *testing.T) {
		_, err := newManager(cfg).GenerateText(context.Background(), &llmprovider.Request{Prompt: "x"})
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}
