package binder

import (
	"fmt"
	"net/http"
)

// Path binds `path` tags using extractor, typically chi.URLParam.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}
		return bindValues(v, "path", func(name string) ([]string, bool) {
			value := extractor(r, name)
			return []string{value}, value != ""
		}, ErrInvalidPath)
	}
}
