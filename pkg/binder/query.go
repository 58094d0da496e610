package binder

import "net/http"

// Query binds `query` tags from the URL query string.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, "query", lookupIn(r.URL.Query()), ErrInvalidQuery)
	}
}
