package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory bounds multipart parsing.
const DefaultMaxMemory = 1 << 20

// Form binds `form` tags from urlencoded or multipart bodies.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}
		mt, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w: expected form data", err)
		}

		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindValues(v, "form", lookupIn(r.PostForm), ErrInvalidForm)
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindValues(v, "form", lookupIn(r.MultipartForm.Value), ErrInvalidForm)
		case "application/json":
			// DataStar posts its signals as JSON; that is for the JSON binder.
			return ErrBinderNotApplicable
		default:
			return fmt.Errorf("%w: got %s, expected form data", ErrUnsupportedMediaType, mt)
		}
	}
}

func lookupIn(values map[string][]string) func(string) ([]string, bool) {
	return func(name string) ([]string, bool) {
		v, ok := values[name]
		return v, ok
	}
}
