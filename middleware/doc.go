// Package middleware adapts a strategy.Strategy to HTTP frameworks.
//
// Authenticate wraps a net/http handler chain; AuthenticateGin produces a
// gin.HandlerFunc. Both build the strategy's request view from the inbound
// request, run the strategy, and translate its outcome:
//
//   - success → identity stored in the request context, handler invoked
//   - fail    → RFC 7807 JSON with the outcome's status (401 by default)
//   - error   → 500 JSON, cause logged, never sent to the client
//
// RequestID and Recovery are general-purpose companions for the same chains.
package middleware
