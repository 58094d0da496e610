package signup

import "github.com/dmitrymomot/pagekit/pkg/validator"

// FormState holds the latest result of every field.
type FormState struct {
	Name     Result
	Email    Result
	Password Result
	Confirm  Result
}

// Valid is true only when every field is valid.
func (s FormState) Valid() bool {
	return s.Name.Valid && s.Email.Valid && s.Password.Valid && s.Confirm.Valid
}

// Get returns the result of field f.
func (s FormState) Get(f Field) Result {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldPassword:
		return s.Password
	case FieldConfirm:
		return s.Confirm
	}
	return Result{Valid: true}
}

func (s *FormState) set(f Field, r Result) {
	switch f {
	case FieldName:
		s.Name = r
	case FieldEmail:
		s.Email = r
	case FieldPassword:
		s.Password = r
	case FieldConfirm:
		s.Confirm = r
	}
}

// Failures returns one error per failing field, in page order. Code is the
// failure Kind.
func (s FormState) Failures() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range Fields() {
		if r := s.Get(f); !r.Valid {
			errs.Add(validator.ValidationError{Field: string(f), Code: string(r.Kind), Message: r.Message})
		}
	}
	return errs
}

// Err returns Failures as an error, or nil when every field is valid.
func (s FormState) Err() error {
	if errs := s.Failures(); !errs.IsEmpty() {
		return errs
	}
	return nil
}
