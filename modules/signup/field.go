package signup

import "fmt"

// Field identifies a form input. Values double as element ids.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldConfirm  Field = "confirm-password"
)

// Fields lists the form inputs in page order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPassword, FieldConfirm}
}

// ParseField validates a raw field id.
func ParseField(raw string) (Field, error) {
	switch f := Field(raw); f {
	case FieldName, FieldEmail, FieldPassword, FieldConfirm:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

// SlotID is the id of the element that shows the field's message.
func (f Field) SlotID() string {
	return string(f) + "-error"
}

// Kind classifies a validation failure.
type Kind string

const (
	KindNone          Kind = ""
	KindEmpty         Kind = "EMPTY"
	KindInvalidChars  Kind = "INVALID_CHARS"
	KindInvalidFormat Kind = "INVALID_FORMAT"
	KindTooShort      Kind = "TOO_SHORT"
	KindWeak          Kind = "WEAK"
	KindMismatch      Kind = "MISMATCH"
)

// Result is the outcome of validating one field. Message is empty when Valid.
type Result struct {
	Valid   bool
	Kind    Kind
	Message string
}

// Slot receives a field's message; an empty string clears it.
type Slot interface {
	Set(message string)
}

// MessageSlot is the in-memory Slot rendered next to each input.
type MessageSlot struct {
	text string
}

func (s *MessageSlot) Set(message string) { s.text = message }

func (s *MessageSlot) Text() string { return s.text }

// FieldSpec binds a field to its current value and its message slot.
type FieldSpec struct {
	ID    Field
	Value string
	Slot  Slot
}

// Values are the raw form inputs, exactly as typed.
type Values struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Confirm  string `form:"confirm-password" json:"confirm-password"`
}

// Get returns the value of field f.
func (v Values) Get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldConfirm:
		return v.Confirm
	}
	return ""
}

// With returns a copy of v with field f set to value.
func (v Values) With(f Field, value string) Values {
	switch f {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	case FieldConfirm:
		v.Confirm = value
	}
	return v
}
