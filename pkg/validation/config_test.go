package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_NoErrors(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("Path", "/tmp/edges.txt").
		Positive("TopN", 10).
		NonNegative("SampleK", 0).
		RangeInt("Workers", 4, 0, 256).
		OneOf("Kind", "edgelist", []string{"edgelist", "postgres"})

	if cv.HasErrors() {
		t.Errorf("Expected no errors, got %v", cv.Errors())
	}
	if err := cv.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("Path", "").
		Positive("TopN", -1).
		OneOf("Kind", "carrier_pigeon", []string{"edgelist", "postgres"})

	if len(cv.Errors()) != 3 {
		t.Errorf("Expected 3 errors, got %d: %v", len(cv.Errors()), cv.Errors())
	}

	err := cv.Validate()
	if err == nil {
		t.Fatal("Expected combined error")
	}
	if !strings.Contains(err.Error(), "3 errors") {
		t.Errorf("Combined error should mention the count, got %v", err)
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.When(false, func(v *ConfigValidator) {
		v.Required("DatabaseURL", "")
	})
	if cv.HasErrors() {
		t.Error("Skipped branch should not add errors")
	}

	cv.When(true, func(v *ConfigValidator) {
		v.Required("DatabaseURL", "")
	})
	if !cv.HasErrors() {
		t.Error("Taken branch should add its error")
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	sentinel := errors.New("bad value")
	cv := NewConfigValidator("TestConfig")
	cv.Custom("Field", func() error { return sentinel })

	err := cv.Validate()
	if !errors.Is(err, sentinel) {
		t.Errorf("Custom error should unwrap, got %v", err)
	}
}

func TestDefaultOr(t *testing.T) {
	if got := DefaultOr("", "edgelist"); got != "edgelist" {
		t.Errorf("DefaultOr empty = %q, want edgelist", got)
	}
	if got := DefaultOr("postgres", "edgelist"); got != "postgres" {
		t.Errorf("DefaultOr set = %q, want postgres", got)
	}
}

func TestDefaultOrInt(t *testing.T) {
	if got := DefaultOrInt(0, 10); got != 10 {
		t.Errorf("DefaultOrInt(0) = %d, want 10", got)
	}
	if got := DefaultOrInt(-5, 10); got != 10 {
		t.Errorf("DefaultOrInt(-5) = %d, want 10", got)
	}
	if got := DefaultOrInt(3, 10); got != 3 {
		t.Errorf("DefaultOrInt(3) = %d, want 3", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(500, 1, 256); got != 256 {
		t.Errorf("ClampInt high = %d, want 256", got)
	}
	if got := ClampInt(-1, 1, 256); got != 1 {
		t.Errorf("ClampInt low = %d, want 1", got)
	}
	if got := ClampInt(8, 1, 256); got != 8 {
		t.Errorf("ClampInt in range = %d, want 8", got)
	}
}
