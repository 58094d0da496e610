package validator

import "regexp"

// jsSpace is the ECMAScript \s class; Go's \s only covers ASCII.
const jsSpace = `\t\n\v\f\r \p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	lettersAndSpacesRegex = regexp.MustCompile(`^[A-Za-z` + jsSpace + `]+$`)
	emailShapeRegex       = regexp.MustCompile(`^[^@` + jsSpace + `]+@[^@` + jsSpace + `]+\.[^@` + jsSpace + `]+$`)
)

// LettersAndSpaces fails unless value is non-empty and consists of ASCII
// letters and whitespace only.
func LettersAndSpaces(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lettersAndSpacesRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:             field,
			Code:              CodeLettersAndSpace,
			Message:           "must contain only letters and spaces",
			TranslationKey:    "validation.letters_and_spaces",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// EmailShape checks the loose local@domain.tld shape: no whitespace and no
// extra "@" in any part, and a dot between domain and suffix. It does not
// attempt RFC 5322 parsing.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:             field,
			Code:              CodeEmailShape,
			Message:           "must be a valid email address",
			TranslationKey:    "validation.email",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
