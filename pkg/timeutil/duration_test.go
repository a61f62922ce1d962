package timeutil

import (
	"testing"
	"time"
)

func TestParseDurationDefault(t *testing.T) {
	dur, label, err := ParseDuration("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != time.Hour {
		t.Fatalf("expected 1h, got %v", dur)
	}
	if label != "1h" {
		t.Fatalf("expected label 1h, got %s", label)
	}
}

func TestParseDurationComposite(t *testing.T) {
	dur, label, err := ParseDuration("1d2h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 26*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1d2h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseDurationInvalid(t *testing.T) {
	if _, _, err := ParseDuration("noop"); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
	if _, _, err := ParseDuration("5x"); err == nil {
		t.Fatalf("expected error for unknown unit")
	}
}
