// Package logger wraps zerolog with configuration and structured field
// helpers shared across the module. Middleware and the oidc verifier log
// through it; the strategy core stays silent and reports through outcomes.
package logger
