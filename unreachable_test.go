package narrow_test

import (
	"errors"
	"strings"
	"testing"

	narrow "github.com/reoring/narrow"
)

func TestUnreachable_ErrorModel(t *testing.T) {
	err := narrow.Unreachable(fruit{kind: "durian", weight: 9})
	if !errors.Is(err, narrow.ErrUnexpectedVariant) {
		t.Fatalf("expected ErrUnexpectedVariant")
	}
	if narrow.FirstCode(err) != narrow.CodeUnexpectedVariant {
		t.Fatalf("unexpected code: %q", narrow.FirstCode(err))
	}
	iss, _ := narrow.AsIssues(err)
	if iss[0].Params["kind"] != "durian" {
		t.Fatalf("kind param missing: %+v", iss[0].Params)
	}
	if !strings.Contains(err.Error(), "unexpected object") {
		t.Fatalf("message should describe the value: %v", err)
	}
}

func TestUnreachable_PlainValue(t *testing.T) {
	err := narrow.Unreachable(42)
	if !strings.Contains(err.Error(), "int 42") {
		t.Fatalf("unexpected message: %v", err)
	}
	if _, ok := narrow.KindOf(42); ok {
		t.Fatalf("int has no kind")
	}
	if _, ok := narrow.KindOf(nil); ok {
		t.Fatalf("nil has no kind")
	}
}

func TestMustNotReach_Panics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, narrow.ErrUnexpectedVariant) {
			t.Fatalf("expected unexpected-variant panic, got %v", r)
		}
	}()
	narrow.MustNotReach("x")
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := narrow.Issues{
		{Code: "a", Path: "/1"},
		{Code: "b", Path: "/2"},
		{Code: "c", Path: "/3"},
		{Code: "d", Path: "/4"},
	}
	got := iss.Error()
	if got != "a at /1; b at /2; c at /3; ... (total 4)" {
		t.Fatalf("unexpected summary: %q", got)
	}
	if narrow.FirstCode(nil) != "" {
		t.Fatalf("nil error has no code")
	}
}
