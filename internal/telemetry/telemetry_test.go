package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInstrumenterRecordsEvent(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	inst, err := New(
		Config{ServiceName: "otpfield-test", Version: "test"},
		WithSpanProcessor(recorder),
	)
	if err != nil {
		t.Fatalf("New instrumenter: %v", err)
	}
	t.Cleanup(func() {
		_ = inst.Shutdown(context.Background())
	})

	ctx, span := inst.Start(context.Background(), EventStart{Kind: "paste", Focus: 0, Fields: 4})
	if ctx == nil || span == nil {
		t.Fatalf("expected span to be created")
	}
	span.End(EventResult{Changed: true, Moved: true, Focus: 2, Filled: 3})

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	ro := spans[0]
	if got := ro.Name(); got != "otpfield.paste" {
		t.Fatalf("unexpected span name %q", got)
	}
	assertAttribute(t, ro, "otpfield.event.kind", "paste")
	assertAttribute(t, ro, "otpfield.fields", int64(4))
	assertAttribute(t, ro, "otpfield.focus.after", int64(2))
	assertAttribute(t, ro, "otpfield.event.changed", true)
	if ro.Status().Code != codes.Ok {
		t.Fatalf("expected span status OK, got %v", ro.Status().Code)
	}
	if len(ro.Events()) != 0 {
		t.Fatalf("expected no ignored event, got %d", len(ro.Events()))
	}
}

func TestInstrumenterMarksIgnoredEvents(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	inst, err := New(Config{}, WithSpanProcessor(recorder))
	if err != nil {
		t.Fatalf("New instrumenter: %v", err)
	}
	_, span := inst.Start(context.Background(), EventStart{Kind: "character", Focus: 1, Fields: 6})
	span.End(EventResult{Focus: 1})

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	events := spans[0].Events()
	if len(events) != 1 || events[0].Name != "otpfield.event.ignored" {
		t.Fatalf("expected ignored event, got %+v", events)
	}
}

func TestNewWithoutEndpointIsNoop(t *testing.T) {
	inst, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := inst.(noopInstrumenter); !ok {
		t.Fatalf("expected noop instrumenter, got %T", inst)
	}
	ctx := context.Background()
	gotCtx, span := inst.Start(ctx, EventStart{Kind: "delete"})
	if gotCtx != ctx {
		t.Fatalf("noop should return the same context")
	}
	span.End(EventResult{})
	if err := inst.Shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func assertAttribute(t *testing.T, span sdktrace.ReadOnlySpan, key string, want interface{}) {
	t.Helper()
	attrs := span.Attributes()
	for _, attr := range attrs {
		if string(attr.Key) != key {
			continue
		}
		switch v := want.(type) {
		case string:
			if attr.Value.AsString() == v {
				return
			}
		case bool:
			if attr.Value.AsBool() == v {
				return
			}
		case int64:
			if attr.Value.AsInt64() == v {
				return
			}
		}
		t.Fatalf("attribute %s mismatch: got %v, want %v", key, attr.Value, want)
	}
	t.Fatalf("attribute %s not found", key)
}
