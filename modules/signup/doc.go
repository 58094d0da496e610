// Package signup validates the signup form and drives its feedback.
//
// Validator holds the fixed per-field rules. Each rule list runs in order
// and the first failure wins, so a too-short password is reported as
// TOO_SHORT even when it also lacks digits:
//
//	v := signup.NewValidator(nil)
//	res := v.Password("ab") // Kind: KindTooShort
//
// Controller owns the form: the current field values, one message slot per
// field and the summary line. Submit clears everything, validates all four
// fields independently and sets the summary; a successful submit also
// resets the field values. Input records a value and clears the feedback
// without validating.
//
// Messages are English by default. A Localizer (typically backed by
// pkg/i18n) may replace them; the catalog keys are "signup.<field>.<kind>"
// and "signup.summary.success" / "signup.summary.error".
package signup
