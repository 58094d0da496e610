package validator

import "errors"

var ErrValidationFailed = errors.New("validation failed")

// Codes reported by the rule constructors.
const (
	CodeRequired        = "required"
	CodeMinLength       = "min_length"
	CodeLettersAndSpace = "letters_and_spaces"
	CodeEmailShape      = "email"
	CodeLetterAndDigit  = "letter_and_digit"
	CodeEqual           = "equal"
)
