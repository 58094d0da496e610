package signup_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/pagekit/modules/signup"
)

func TestValidatorName(t *testing.T) {
	t.Parallel()
	v := signup.NewValidator(nil)

	tests := []struct {
		in   string
		kind signup.Kind
	}{
		{"Ada Lovelace", signup.KindNone},
		{"  Grace  ", signup.KindNone},
		{"Jean\tLuc", signup.KindNone},
		{"", signup.KindEmpty},
		{"   ", signup.KindEmpty},
		{"  ", signup.KindEmpty},
		{"R2D2", signup.KindInvalidChars},
		{"O'Brien", signup.KindInvalidChars},
		{"José", signup.KindInvalidChars},
		{"Anne-Marie", signup.KindInvalidChars},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res := v.Name(tt.in)
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.kind == signup.KindNone, res.Valid)
		})
	}

	assert.Equal(t, "Name is required.", v.Name("").Message)
	assert.Equal(t, "Name can only contain letters and spaces.", v.Name("x1").Message)
	assert.Empty(t, v.Name("Ada").Message)
}

func TestValidatorEmail(t *testing.T) {
	t.Parallel()
	v := signup.NewValidator(nil)

	tests := []struct {
		in   string
		kind signup.Kind
	}{
		{"user@example.com", signup.KindNone},
		{"  user@example.com  ", signup.KindNone},
		{"a@b.c", signup.KindNone},
		{"first.last@sub.example.org", signup.KindNone},
		{"", signup.KindEmpty},
		{" \t ", signup.KindEmpty},
		{"user@example", signup.KindInvalidFormat},
		{"userexample.com", signup.KindInvalidFormat},
		{"user @example.com", signup.KindInvalidFormat},
		{"user@@example.com", signup.KindInvalidFormat},
		{"@example.com", signup.KindInvalidFormat},
		{"user@example.", signup.KindInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.kind, v.Email(tt.in).Kind)
		})
	}

	assert.Equal(t, "Email is required.", v.Email("").Message)
	assert.Equal(t, "Please enter a valid email address.", v.Email("nope").Message)
}

func TestValidatorPassword(t *testing.T) {
	t.Parallel()
	v := signup.NewValidator(nil)

	tests := []struct {
		in   string
		kind signup.Kind
		msg  string
	}{
		{"abc123", signup.KindNone, ""},
		{"", signup.KindEmpty, "Password is required."},
		{"abc12", signup.KindTooShort, "Password must be at least 6 characters."},
		{"ab", signup.KindTooShort, "Password must be at least 6 characters."},
		{"abcdef", signup.KindWeak, "Password must contain letters and numbers."},
		{"123456", signup.KindWeak, "Password must contain letters and numbers."},
		{"      ", signup.KindWeak, "Password must contain letters and numbers."},
		{" a1   ", signup.KindNone, ""},
		// Two UTF-16 units per emoji: three emoji reach the minimum length.
		{"\U0001F600\U0001F600\U0001F600", signup.KindWeak, "Password must contain letters and numbers."},
		{"\U0001F600\U0001F600a", signup.KindTooShort, "Password must be at least 6 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res := v.Password(tt.in)
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.msg, res.Message)
		})
	}
}

func TestValidatorConfirm(t *testing.T) {
	t.Parallel()
	v := signup.NewValidator(nil)

	assert.True(t, v.Confirm("abc123", "abc123").Valid)
	assert.Equal(t, signup.KindMismatch, v.Confirm("abc124", "abc123").Kind)
	assert.Equal(t, signup.KindMismatch, v.Confirm("abc123 ", "abc123").Kind)
	assert.Equal(t, signup.KindEmpty, v.Confirm("", "abc123").Kind)
	assert.Equal(t, signup.KindEmpty, v.Confirm("", "").Kind)
	assert.Equal(t, "Please confirm your password.", v.Confirm("", "x").Message)
	assert.Equal(t, "Passwords do not match.", v.Confirm("y", "x").Message)
}

type recordingSlot struct {
	writes []string
}

func (s *recordingSlot) Set(m string) { s.writes = append(s.writes, m) }

func TestValidateWritesSlot(t *testing.T) {
	t.Parallel()
	v := signup.NewValidator(nil)

	slot := &recordingSlot{}
	res := v.Validate(signup.FieldSpec{ID: signup.FieldPassword, Value: "abc", Slot: slot}, "")
	assert.Equal(t, signup.KindTooShort, res.Kind)
	assert.Equal(t, []string{"Password must be at least 6 characters."}, slot.writes)

	res = v.Validate(signup.FieldSpec{ID: signup.FieldConfirm, Value: "abc123", Slot: slot}, "abc123")
	assert.True(t, res.Valid)
	assert.Equal(t, "", slot.writes[len(slot.writes)-1])

	res = v.Validate(signup.FieldSpec{ID: "nickname", Value: "x"}, "")
	assert.True(t, res.Valid)
}

func TestValidateIsIdempotent(t *testing.T) {
	t.Parallel()
	v := signup.NewValidator(nil)

	inputs := []signup.Values{
		{},
		{Name: "John123", Email: "bad", Password: "ab", Confirm: "abc"},
		{Name: "John Doe", Email: "john@example.com", Password: "abc123", Confirm: "abc123"},
		{Name: strings.Repeat(" ", 3), Email: " x@y.z ", Password: "abcdef", Confirm: "abcdeg"},
	}
	for _, in := range inputs {
		first := v.ValidateAll(in)
		second := v.ValidateAll(in)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("ValidateAll(%+v) not idempotent (-first +second):\n%s", in, diff)
		}
	}
}

func TestLocalizer(t *testing.T) {
	t.Parallel()

	var keys []string
	loc := func(key, fallback string, args ...string) string {
		keys = append(keys, key)
		if key == "signup.password.too_short" {
			assert.Contains(t, args, "min")
			assert.Contains(t, args, "6")
			return "muy corta"
		}
		return fallback
	}
	v := signup.NewValidator(loc)

	assert.Equal(t, "muy corta", v.Password("abc").Message)
	assert.Equal(t, "Name is required.", v.Name("").Message)
	assert.Equal(t, []string{"signup.password.too_short", "signup.name.empty"}, keys)

	v.Name("Ada")
	assert.Len(t, keys, 2, "valid results do not look messages up")
}
