package ai

import (
	"strings"
	"testing"

	"github.com/watchit-dev/watchit/internal/domain"
)

func TestClassifyZeroDivision(t *testing.T) {
	c := NewFallbackClassifier()
	result := c.Classify(domain.ErrorContext{
		Message: "ZeroDivisionError: division by zero",
		Raw:     "Traceback (most recent call last):\nZeroDivisionError: division by zero",
	})

	if result.Error != "ZeroDivisionError" {
		t.Fatalf("Error = %q, want ZeroDivisionError", result.Error)
	}
	if result.Confidence != domain.FallbackConfidence {
		t.Fatalf("Confidence = %v, want %v", result.Confidence, domain.FallbackConfidence)
	}
	if !strings.Contains(result.Solution, "not zero") {
		t.Fatalf("Solution %q does not mention a zero check", result.Solution)
	}
}

func TestClassifyKnownClasses(t *testing.T) {
	cases := []struct {
		raw       string
		wantError string
	}{
		{`TypeError: can only concatenate str (not "int") to str`, `TypeError: can only concatenate str (not "int") to str`},
		{"IndexError: list index out of range", "IndexError"},
		{"KeyError: 'missing'", "KeyError"},
		{"NameError: name 'foo' is not defined", "NameError"},
		{"TypeError: foo.bar is not a function", "TypeError: x is not a function"},
	}

	c := NewFallbackClassifier()
	for _, tc := range cases {
		result := c.Classify(domain.ErrorContext{Raw: tc.raw})
		if result.Error != tc.wantError {
			t.Errorf("Classify(%q).Error = %q, want %q", tc.raw, result.Error, tc.wantError)
		}
		if result.Confidence != domain.FallbackConfidence {
			t.Errorf("Classify(%q).Confidence = %v", tc.raw, result.Confidence)
		}
	}
}

func TestClassifyGenericFallback(t *testing.T) {
	c := NewFallbackClassifier()
	result := c.Classify(domain.ErrorContext{
		Message: "panic: runtime error",
		Raw:     "panic: runtime error",
	})

	if result.Error != "panic: runtime error" {
		t.Fatalf("Error = %q, want the extracted message", result.Error)
	}
	if result.Confidence != domain.GenericConfidence {
		t.Fatalf("Confidence = %v, want %v", result.Confidence, domain.GenericConfidence)
	}
}

func TestClassifyEmptyContextUsesUnknown(t *testing.T) {
	c := NewFallbackClassifier()
	result := c.Classify(domain.ErrorContext{})
	if result.Error != "Unknown error" {
		t.Fatalf("Error = %q, want Unknown error", result.Error)
	}
}

func TestClassifyIsTotalAndDeterministic(t *testing.T) {
	inputs := []domain.ErrorContext{
		{},
		{Raw: "ZeroDivisionError"},
		{Raw: strings.Repeat("x", 1<<16)},
		{Message: "weird", Raw: "\x00\xff garbage"},
	}

	c := NewFallbackClassifier()
	for _, in := range inputs {
		first := c.Classify(in)
		second := c.Classify(in)
		if first != second {
			t.Fatalf("Classify not deterministic for %+v", in)
		}
		if first.Confidence < 0 || first.Confidence > 1 {
			t.Fatalf("Confidence %v out of [0,1]", first.Confidence)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Output matching both the concat rule and the generic TypeError
	// function rule resolves to the earlier rule.
	raw := `TypeError: can only concatenate str (not "int") to str; also x is not a function`
	c := NewFallbackClassifier()
	result := c.Classify(domain.ErrorContext{Raw: raw})
	if result.Error != `TypeError: can only concatenate str (not "int") to str` {
		t.Fatalf("first matching rule did not win: %q", result.Error)
	}
}
