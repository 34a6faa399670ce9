// Package server provides HTTP routing, middleware, and lifecycle helpers for the web wizard.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] method patterns, so a request with the wrong method
// receives 405 from the mux itself.
//
// # Middleware
//
//   - [Logging] writes one structured line per request
//   - [Recover] turns handler panics into 500 responses
//   - [RateLimit] applies a token bucket per client address
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Lifecycle
//
// [Serve] runs an [http.Server] until its context is cancelled, then shuts it down gracefully.
package server
