package validator

import "fmt"

// RequiredString fails when value is empty or only whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:             field,
			Code:              CodeRequired,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// NotEmpty fails only for the empty string; whitespace counts as content.
func NotEmpty(field, value string) Rule {
	rule := RequiredString(field, value)
	rule.Check = func() bool { return value != "" }
	return rule
}

// MinLenString fails when value has fewer than min UTF-16 code units.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) >= min
		},
		Error: ValidationError{
			Field:             field,
			Code:              CodeMinLength,
			Message:           fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey:    "validation.min_length",
			TranslationValues: map[string]any{"field": field, "min": min},
		},
	}
}
