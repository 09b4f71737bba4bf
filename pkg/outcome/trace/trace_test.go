package trace

import (
	"strings"
	"testing"
)

func TestCaptureIncludesCaller(t *testing.T) {
	t.Parallel()

	s := Capture(0)
	if s == "" {
		t.Fatalf("snapshot must not be empty")
	}
	if !strings.Contains(s, "TestCaptureIncludesCaller") {
		t.Fatalf("snapshot must include the calling frame, got:\n%s", s)
	}
	if !strings.Contains(s, "trace_test.go") {
		t.Fatalf("snapshot must include file:line pairs, got:\n%s", s)
	}
}

func TestCaptureSkip(t *testing.T) {
	t.Parallel()

	s := nested()
	if strings.Contains(s, "trace.nested") {
		t.Fatalf("skip must drop the immediate caller, got:\n%s", s)
	}
	if !strings.Contains(s, "TestCaptureSkip") {
		t.Fatalf("snapshot must still include outer frames, got:\n%s", s)
	}
}

func TestCaptureElidesRuntimeFrames(t *testing.T) {
	t.Parallel()

	if s := Capture(0); strings.Contains(s, "runtime.") {
		t.Fatalf("runtime frames must be elided, got:\n%s", s)
	}
}

func nested() string {
	return Capture(1)
}
