// Package page serves the interactive page over HTTP.
//
// Every interaction endpoint resolves the visitor's widgets.Page from the
// session, dispatches one event on it and answers with the regions the event
// changed: DataStar requests get SSE element patches, plain requests get the
// full page. The JSON API validates a signup payload without touching any
// session state.
//
// Usage:
//
//	svc := page.NewService(translator, views.PageViews(), errorHandler, log)
//	r.Mount("/", svc.Handle())
//
// The session and locale middlewares must run before the service handlers.
package page
