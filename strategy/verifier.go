package strategy

import "context"

// Ticket is the verified result returned by a Verifier: the decoded claims of
// a token whose signature and registered claims passed verification.
type Ticket struct {
	// Claims holds all provider-asserted fields (sub, iss, aud, exp, profile
	// fields, ...) keyed by claim name.
	Claims map[string]any
}

// Subject returns the "sub" claim, the provider-scoped stable identifier of
// the authenticated entity. Empty when the claim is absent or not a string.
func (t *Ticket) Subject() string {
	if t == nil {
		return ""
	}
	sub, _ := t.Claims["sub"].(string)
	return sub
}

// Verifier checks a raw token's signature and claims against the accepted
// audiences. It owns key retrieval and caching; the strategy treats it as a
// black box.
//
// Contract: a non-nil error means the token was rejected or verification
// itself failed; the strategy surfaces both as authentication failure. A nil
// ticket with a nil error means the verifier produced no result, which is
// also a failure. The audience claim must match ANY one of the accepted
// audiences; the strategy does not pre-filter.
//
// Implementations must be safe for concurrent use. The oidc package provides
// a production implementation; tests supply VerifierFunc doubles.
type Verifier interface {
	Verify(ctx context.Context, token string, audiences []string) (*Ticket, error)
}

// VerifierFunc adapts an ordinary function to the Verifier interface.
type VerifierFunc func(ctx context.Context, token string, audiences []string) (*Ticket, error)

// Verify implements Verifier.
func (f VerifierFunc) Verify(ctx context.Context, token string, audiences []string) (*Ticket, error) {
	return f(ctx, token, audiences)
}
