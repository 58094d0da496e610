package signup

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/pagekit/pkg/validator"
)

// MinPasswordLength is measured in UTF-16 code units.
const MinPasswordLength = 6

// Localizer resolves a catalog key to a message, returning fallback
// (with %{name} params filled) when it has none.
type Localizer func(key, fallback string, args ...string) string

// Validator applies the per-field rules. It is stateless apart from its
// Localizer and safe for concurrent use.
type Validator struct {
	localize Localizer
}

// NewValidator returns a validator. A nil Localizer yields English messages.
func NewValidator(loc Localizer) *Validator {
	return &Validator{localize: loc}
}

// Name: required after trimming, then ASCII letters and whitespace only.
func (v *Validator) Name(value string) Result {
	trimmed := validator.TrimSpace(value)
	return v.result(validator.First(
		validator.RequiredString(string(FieldName), trimmed).
			As(string(KindEmpty), "signup.name.empty").
			WithMessage("Name is required."),
		validator.LettersAndSpaces(string(FieldName), trimmed).
			As(string(KindInvalidChars), "signup.name.invalid_chars").
			WithMessage("Name can only contain letters and spaces."),
	))
}

// Email: required after trimming, then local@domain.tld shape.
func (v *Validator) Email(value string) Result {
	trimmed := validator.TrimSpace(value)
	return v.result(validator.First(
		validator.RequiredString(string(FieldEmail), trimmed).
			As(string(KindEmpty), "signup.email.empty").
			WithMessage("Email is required."),
		validator.EmailShape(string(FieldEmail), trimmed).
			As(string(KindInvalidFormat), "signup.email.invalid_format").
			WithMessage("Please enter a valid email address."),
	))
}

// Password is not trimmed: whitespace counts toward length.
func (v *Validator) Password(value string) Result {
	return v.result(validator.First(
		validator.NotEmpty(string(FieldPassword), value).
			As(string(KindEmpty), "signup.password.empty").
			WithMessage("Password is required."),
		validator.MinLenString(string(FieldPassword), value, MinPasswordLength).
			As(string(KindTooShort), "signup.password.too_short").
			WithMessage(fmt.Sprintf("Password must be at least %d characters.", MinPasswordLength)),
		validator.LetterAndDigit(string(FieldPassword), value).
			As(string(KindWeak), "signup.password.weak").
			WithMessage("Password must contain letters and numbers."),
	))
}

// Confirm must be non-empty and byte-identical to password.
func (v *Validator) Confirm(value, password string) Result {
	return v.result(validator.First(
		validator.NotEmpty(string(FieldConfirm), value).
			As(string(KindEmpty), "signup.confirm-password.empty").
			WithMessage("Please confirm your password."),
		validator.EqualTo(string(FieldConfirm), value, string(FieldPassword), password).
			As(string(KindMismatch), "signup.confirm-password.mismatch").
			WithMessage("Passwords do not match."),
	))
}

// Validate runs the rules for spec.ID, writes the message (or "") into
// spec.Slot and returns the result. related is the current password and is
// only read for FieldConfirm. Unknown fields are reported valid.
func (v *Validator) Validate(spec FieldSpec, related string) Result {
	var res Result
	switch spec.ID {
	case FieldName:
		res = v.Name(spec.Value)
	case FieldEmail:
		res = v.Email(spec.Value)
	case FieldPassword:
		res = v.Password(spec.Value)
	case FieldConfirm:
		res = v.Confirm(spec.Value, related)
	default:
		res = Result{Valid: true}
	}
	if spec.Slot != nil {
		spec.Slot.Set(res.Message)
	}
	return res
}

// ValidateAll validates every field of values without touching any slot.
func (v *Validator) ValidateAll(values Values) FormState {
	return FormState{
		Name:     v.Name(values.Name),
		Email:    v.Email(values.Email),
		Password: v.Password(values.Password),
		Confirm:  v.Confirm(values.Confirm, values.Password),
	}
}

func (v *Validator) result(verr validator.ValidationError, failed bool) Result {
	if !failed {
		return Result{Valid: true}
	}
	return Result{
		Kind:    Kind(verr.Code),
		Message: v.text(verr.TranslationKey, verr.Message, params(verr.TranslationValues)...),
	}
}

func (v *Validator) text(key, fallback string, args ...string) string {
	if v == nil || v.localize == nil {
		return fallback
	}
	return v.localize(key, fallback, args...)
}

// params flattens translation values into sorted key/value pairs.
func params(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
