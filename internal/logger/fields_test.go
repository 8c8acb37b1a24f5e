package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  provider  ", Value: "  Gemini  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "provider" || fields[0].String != "Gemini" {
		t.Fatalf("unexpected provider field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), zap.String("foo", "bar")).Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if ctx := entries[0].ContextMap(); ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	fallback := WithFields(nil, zap.String("baz", "qux"))
	if fallback == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	fallback.Info("another log")
}

func TestWithCommonFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithCommonFields(zap.New(core), "gemini", "  ").Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldProvider] != "gemini" {
		t.Fatalf("expected provider field to be gemini, got %q", ctx[FieldProvider])
	}
	if _, ok := ctx[FieldModel]; ok {
		t.Fatalf("expected empty model to be omitted")
	}
}

func TestAnalysisFields(t *testing.T) {
	fields := AnalysisFields("id-1", "resume.txt")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != FieldAnalysisID || fields[1].String != "resume.txt" {
		t.Fatalf("unexpected fields: %+v", fields)
	}

	if stdin := AnalysisFields("id-2", ""); len(stdin) != 1 {
		t.Fatalf("expected file field to be omitted, got %+v", stdin)
	}
}

func TestNew(t *testing.T) {
	for _, tc := range []struct{ json, debug bool }{{false, false}, {true, true}} {
		log, err := New(tc.json, tc.debug)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := log.Core().Enabled(zapcore.DebugLevel); got != tc.debug {
			t.Fatalf("debug enabled = %v, want %v", got, tc.debug)
		}
	}
}
