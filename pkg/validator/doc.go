// Package validator provides small, composable validation rules.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. First evaluates rules in order and stops at the first failure,
// which is how per-field rule chains are run:
//
//	verr, failed := validator.First(
//		validator.RequiredString("name", name),
//		validator.LettersAndSpaces("name", name),
//	)
//
// Rule constructors carry a generic Code and TranslationKey; callers that
// need domain-specific codes re-label a rule with Rule.As. Failures from
// several fields are gathered in ValidationErrors.
//
// Whitespace follows the ECMAScript definition used by browsers (see
// IsSpace), and string length is counted in UTF-16 code units (see
// Length), so server-side results agree with what the page's inputs report.
package validator
