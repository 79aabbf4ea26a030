package ai

import (
	"strings"

	"github.com/watchit-dev/watchit/internal/domain"
	"github.com/watchit-dev/watchit/internal/ports"
)

// fallbackRule maps a substring predicate over the raw output to a canned
// analysis authored for that failure class.
type fallbackRule struct {
	match  func(raw string) bool
	result domain.AnalysisResult
}

// FallbackClassifier is the deterministic offline analysis path, used
// whenever no remote provider is reachable or configured. Rules are checked
// in a fixed priority order; the first match wins.
type FallbackClassifier struct {
	rules []fallbackRule
}

// NewFallbackClassifier builds the classifier with its fixed rule table.
func NewFallbackClassifier() *FallbackClassifier {
	return &FallbackClassifier{rules: fallbackRules()}
}

// Classify is total: it returns a result for any input and never fails.
// Calling it twice with the same context yields identical results.
func (c *FallbackClassifier) Classify(ectx domain.ErrorContext) domain.AnalysisResult {
	for _, rule := range c.rules {
		if rule.match(ectx.Raw) {
			return rule.result
		}
	}
	return domain.AnalysisResult{
		Error:       messageOrUnknown(ectx),
		Explanation: "This error typically occurs due to a mismatch between what the code is expecting and what it's actually receiving.",
		Solution:    "Check the values being used at the point of the error. Ensure types match what the operation requires. Consider adding more validation or error handling.",
		Confidence:  domain.GenericConfidence,
	}
}

func contains(substr string) func(string) bool {
	return func(raw string) bool { return strings.Contains(raw, substr) }
}

func containsAll(substrs ...string) func(string) bool {
	return func(raw string) bool {
		for _, s := range substrs {
			if !strings.Contains(raw, s) {
				return false
			}
		}
		return true
	}
}

func fallbackRules() []fallbackRule {
	return []fallbackRule{
		{
			match: contains(`TypeError: can only concatenate str (not "int") to str`),
			result: domain.AnalysisResult{
				Error:       `TypeError: can only concatenate str (not "int") to str`,
				Explanation: "This error occurs when you try to add (concatenate) a string and an integer directly in Python. Python cannot automatically convert between these types.",
				Solution:    "Convert the integer to a string using the `str()` function before concatenation. For example: `text + str(num)` instead of `text + num`.",
				Confidence:  domain.FallbackConfidence,
			},
		},
		{
			match: contains("ZeroDivisionError"),
			result: domain.AnalysisResult{
				Error:       "ZeroDivisionError",
				Explanation: "This error occurs when you attempt to divide by zero, which is mathematically undefined.",
				Solution:    "Add a check to ensure the denominator is not zero before performing division. Example: `if b != 0: result = a / b else: handle_zero_case()`",
				Confidence:  domain.FallbackConfidence,
			},
		},
		{
			match: contains("IndexError"),
			result: domain.AnalysisResult{
				Error:       "IndexError",
				Explanation: "This error occurs when you try to access an index that is outside the bounds of a list or sequence.",
				Solution:    "Check that your index is within the valid range (0 to len(sequence)-1) before accessing it. Consider using a try/except block or a conditional check.",
				Confidence:  domain.FallbackConfidence,
			},
		},
		{
			match: contains("KeyError"),
			result: domain.AnalysisResult{
				Error:       "KeyError",
				Explanation: "This error occurs when you try to access a dictionary key that doesn't exist.",
				Solution:    "Use dict.get(key) which returns None for missing keys, or check if the key exists with `if key in dict` before accessing it.",
				Confidence:  domain.FallbackConfidence,
			},
		},
		{
			match: contains("NameError"),
			result: domain.AnalysisResult{
				Error:       "NameError",
				Explanation: "This error occurs when you try to use a variable or function that hasn't been defined.",
				Solution:    "Make sure the variable is defined before using it. Check for typos in variable names. Ensure the variable is defined in the current scope.",
				Confidence:  domain.FallbackConfidence,
			},
		},
		{
			match: containsAll("TypeError", "is not a function"),
			result: domain.AnalysisResult{
				Error:       "TypeError: x is not a function",
				Explanation: "This JavaScript error occurs when you try to call something that is not a function as if it were a function.",
				Solution:    "Check the type of the object before calling it. Make sure you're not using a property when you meant to use a method.",
				Confidence:  domain.FallbackConfidence,
			},
		},
	}
}

var _ ports.FallbackClassifier = (*FallbackClassifier)(nil)
