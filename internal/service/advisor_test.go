package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAdvise_SummaryIsCachedPerWeek(t *testing.T) {
	svc, f := newTestService(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first, err := svc.Advise(ctx, "u1", AdviceSummary)
	if err != nil {
		t.Fatalf("first advise: %v", err)
	}
	if first != "generated text" {
		t.Fatalf("unexpected summary %q", first)
	}
	if f.ai.calls != 1 {
		t.Fatalf("expected 1 model call, got %d", f.ai.calls)
	}

	second, err := svc.Advise(ctx, "u1", AdviceSummary)
	if err != nil {
		t.Fatalf("second advise: %v", err)
	}
	if second != first {
		t.Errorf("cached summary changed: %q vs %q", second, first)
	}
	if f.ai.calls != 1 {
		t.Errorf("cache miss: model called %d times", f.ai.calls)
	}
}

func TestAdvise_FallbackOnModelFailure(t *testing.T) {
	svc, f := newTestService(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()
	f.ai.err = errors.New("upstream down")

	text, err := svc.Advise(ctx, "u1", AdviceMentor)
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if text != adviceFallback {
		t.Errorf("expected fallback text, got %q", text)
	}
}

func TestAdvise_FailedSummaryIsNotCached(t *testing.T) {
	svc, f := newTestService(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()
	f.ai.err = errors.New("upstream down")

	text, err := svc.Advise(ctx, "u1", AdviceSummary)
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if text != adviceFallback {
		t.Fatalf("expected fallback, got %q", text)
	}
	if len(f.summaries.items) != 0 {
		t.Fatal("fallback text was cached as a summary")
	}

	// Once the model recovers, the real summary is generated and cached.
	f.ai.err = nil
	text, err = svc.Advise(ctx, "u1", AdviceSummary)
	if err != nil {
		t.Fatalf("advise after recovery: %v", err)
	}
	if text != "generated text" {
		t.Errorf("expected generated summary, got %q", text)
	}
	if len(f.summaries.items) != 1 {
		t.Errorf("expected cached summary, got %d", len(f.summaries.items))
	}
}

func TestAdvise_UnknownKind(t *testing.T) {
	svc, _ := newTestService(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC))
	if _, err := svc.Advise(context.Background(), "u1", AdviceKind("tarot")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteMonthSummaries(t *testing.T) {
	svc, f := newTestService(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if _, err := svc.Advise(ctx, "u1", AdviceSummary); err != nil {
		t.Fatalf("advise: %v", err)
	}
	monthID := f.summaries.items[0].MonthID

	n, err := svc.DeleteMonthSummaries(ctx, "u1", monthID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 || len(f.summaries.items) != 0 {
		t.Errorf("expected 1 summary dropped, got n=%d remaining=%d", n, len(f.summaries.items))
	}
}
