package validator

import "regexp"

var (
	asciiLetterRegex = regexp.MustCompile(`[A-Za-z]`)
	asciiDigitRegex  = regexp.MustCompile(`[0-9]`)
)

// LetterAndDigit fails unless value contains at least one ASCII letter and
// at least one ASCII digit.
func LetterAndDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return asciiLetterRegex.MatchString(value) && asciiDigitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:             field,
			Code:              CodeLetterAndDigit,
			Message:           "must contain letters and numbers",
			TranslationKey:    "validation.letter_and_digit",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
