package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize bounds JSON bodies.
const DefaultMaxJSONSize = 64 << 10

// JSON decodes an application/json body into v. Unknown fields and
// trailing data are rejected.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}
		mt, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w: expected application/json", err)
		}
		if mt != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		dec := json.NewDecoder(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}
		return nil
	}
}
