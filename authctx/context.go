// Package authctx propagates the authenticated identity through request
// context. Middleware stores the resolved principal and the verified claims
// after a successful authentication; handlers retrieve them downstream.
//
//	// in middleware
//	ctx = authctx.Set(ctx, authctx.Identity{Principal: user, Subject: sub, Claims: claims})
//
//	// in handlers
//	user, ok := authctx.Principal[*User](ctx)
package authctx

import (
	"context"
	"errors"
)

// Identity is the authenticated state attached to a request: the resolved
// application principal plus the provider-asserted claims it came from.
type Identity struct {
	// Principal is the application-level user/account object.
	Principal any

	// Subject is the provider-scoped identifier ("sub" claim).
	Subject string

	// Claims holds the full verified claims map.
	Claims map[string]any
}

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var identityKey = contextKey{}

// Set stores the authenticated identity in the context.
func Set(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// Get retrieves the authenticated identity from the context.
func Get(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// Principal retrieves the typed principal from the context. Returns zero and
// false when no identity is present or the principal has a different type.
func Principal[T any](ctx context.Context) (T, bool) {
	id, ok := Get(ctx)
	if !ok {
		var zero T
		return zero, false
	}
	p, ok := id.Principal.(T)
	return p, ok
}

// MustPrincipal retrieves the typed principal or panics. Use in handlers
// where authentication middleware guarantees an identity exists.
func MustPrincipal[T any](ctx context.Context) T {
	p, ok := Principal[T](ctx)
	if !ok {
		panic("authctx: principal not found in context or wrong type")
	}
	return p
}

// ErrNoIdentity is returned when no identity is present in the context.
var ErrNoIdentity = errors.New("authctx: no identity in context")

// GetOrError retrieves the identity, returning ErrNoIdentity when absent.
func GetOrError(ctx context.Context) (Identity, error) {
	id, ok := Get(ctx)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
