package util

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// ValidationError marks input rejections so controllers can answer 400
// instead of 500.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// Field validators for goal and progress input. Each is pure and returns nil
// or a human-readable error; callers stop at the first failure.

var progressValuePattern = regexp.MustCompile(`^\d+$`)

const MaxDescriptionLength = 250

func ValidateGoalName(name string) error {
	if name == "" {
		return NewValidationError("Goal name is required.")
	}
	// Length bounds count characters, not bytes, so multibyte names measure
	// the same as they read.
	if utf8.RuneCountInString(name) < 3 {
		return NewValidationError("Goal name must be at least 3 characters long.")
	}
	return nil
}

func ValidateGoalTarget(target string) error {
	if target == "" {
		return NewValidationError("Target value is required.")
	}
	if _, err := strconv.ParseFloat(target, 64); err != nil {
		return NewValidationError("Target value must be a number.")
	}
	return nil
}

func ValidateGoalMetric(metric string) error {
	if metric == "" {
		return NewValidationError("Metric is required.")
	}
	return nil
}

// ValidateProgressValue accepts non-negative integer strings only. Decimals
// and negative values are rejected on purpose.
func ValidateProgressValue(value string) error {
	if value == "" {
		return NewValidationError("Progress value is required.")
	}
	if !progressValuePattern.MatchString(value) {
		return NewValidationError("Invalid progress value.")
	}
	return nil
}

func ValidateProgressDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return NewValidationError("Description is too long.")
	}
	return nil
}
