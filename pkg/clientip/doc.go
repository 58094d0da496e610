// Package clientip resolves the address of the client behind a request.
//
// A Resolver reads a configured list of proxy headers in order and falls back
// to the connection's remote address. Only list headers that a proxy you
// control overwrites; any other header is client-controlled.
//
//	r.Use(clientip.New("X-Forwarded-For", "X-Real-IP").Middleware)
//	ip := clientip.FromContext(ctx)
package clientip
