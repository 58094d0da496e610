package handler

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/pagekit/pkg/validator"
)

// ValidationError holds messages per field.
type ValidationError url.Values

func NewValidationError() ValidationError {
	return make(ValidationError)
}

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// asValidationError finds a ValidationError in err's chain. Rule failures
// from pkg/validator are converted, keeping each field's messages in
// rule order.
func asValidationError(err error) (ValidationError, bool) {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	rules := validator.ExtractValidationErrors(err)
	if rules == nil {
		return nil, false
	}
	valErr = NewValidationError()
	for _, field := range rules.Fields() {
		for _, msg := range rules.Get(field) {
			valErr.Add(field, msg)
		}
	}
	return valErr, true
}
