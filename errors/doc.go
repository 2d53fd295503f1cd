// Package errors provides structured errors for the authentication pipeline.
//
// AppError carries a machine-readable code, a client-safe message, and the
// HTTP status the error maps to, following RFC 7807 for the response shape.
// Middleware renders AppError values directly; anything else is wrapped as an
// internal error so causes never leak to clients.
package errors
