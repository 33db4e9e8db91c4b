package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Color != "orange" || cfg.Width != 6 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidate_RejectsBadWidth(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for zero width")
	}
	if !strings.Contains(err.Error(), "width") {
		t.Fatalf("error should mention width, got %v", err)
	}
}

func TestValidate_RejectsNegativeHold(t *testing.T) {
	cfg := Default()
	cfg.Hold = -0.1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative hold")
	}
}

func TestValidate_AllowsNonPositiveFade(t *testing.T) {
	cfg := Default()
	cfg.Fade = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero fade should be valid (skips the fade), got %v", err)
	}
	cfg.Fade = -1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("negative fade should be valid (skips the fade), got %v", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := Config{Hold: 0.4, Fade: 0.3}
	if got := cfg.HoldDuration(); got != 400*time.Millisecond {
		t.Fatalf("HoldDuration() = %v, want 400ms", got)
	}
	if got := cfg.FadeDuration(); got != 300*time.Millisecond {
		t.Fatalf("FadeDuration() = %v, want 300ms", got)
	}
}
