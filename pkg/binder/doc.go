// Package binder fills request structs from HTTP requests.
//
// Each binder reads one source and honours one struct tag:
//
//	Form()        `form:"name"`   urlencoded or multipart bodies
//	JSON()        `json:"name"`   application/json bodies, unknown fields rejected
//	Query()       `query:"name"`  URL query string
//	Path(chi.URLParam) `path:"name"` router path parameters
//
// Binders that have nothing to read (a Form binder on a GET request, for
// example) return ErrBinderNotApplicable; handler.Wrap skips those, so the
// same struct can be bound from several sources:
//
//	type InputRequest struct {
//		Field string `query:"field"`
//		Name  string `form:"name"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, InputRequest](binder.Query(), binder.Form()))
//
// Values are bound verbatim. Binders never trim or sanitise strings because
// validation must see exactly what the visitor typed.
package binder
