package validator

// EqualTo fails unless value == other. otherField names the field value is
// compared against.
func EqualTo[T comparable](field string, value T, otherField string, other T) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:             field,
			Code:              CodeEqual,
			Message:           "must match " + otherField,
			TranslationKey:    "validation.equal",
			TranslationValues: map[string]any{"field": field, "other": otherField},
		},
	}
}
