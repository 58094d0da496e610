// Package handler turns typed functions into http.HandlerFuncs.
//
// A handler receives a Context and an already-bound request value and
// returns a Response:
//
//	type toggleRequest struct {
//		ID string `path:"id"`
//	}
//
//	h := handler.HandlerFunc[handler.Context, toggleRequest](
//		func(ctx handler.Context, req toggleRequest) handler.Response {
//			if err := page.Dispatch(widgets.Event{Type: widgets.FAQToggle, Target: req.ID}); err != nil {
//				return handler.Error(err)
//			}
//			return handler.PatchSet(views.Page(snapshot), handler.Patch(views.FAQItem(item), handler.WithTarget("#faq-"+req.ID)))
//		},
//	)
//
//	r.Post("/faq/{id}/toggle", handler.Wrap(h,
//		handler.WithBinders[handler.Context, toggleRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, toggleRequest](errHandler),
//	))
//
// # DataStar
//
// Requests sent by DataStar (detected by IsDataStar) are answered with
// server-sent events that patch the DOM; other requests get complete HTML.
// PatchSet covers both cases with one value: element patches and an optional
// signal patch for DataStar, the full page otherwise.
//
// # Errors
//
// Binder and render failures, and handlers returning Error(err), go to the
// ErrorHandler. NewErrorHandler renders a toast for DataStar requests and an
// error page otherwise, mapping HTTPError, ValidationError and binder errors
// to status codes. JSON endpoints use JSON and JSONError instead, which turn
// ValidationError into a 422 body with per-field details.
package handler
