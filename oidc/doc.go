// Package oidc implements token verification against an OpenID Connect
// identity provider. It discovers the issuer's configuration, caches the
// provider's JWKS with TTL-based refresh, and verifies token signatures and
// registered claims with golang-jwt.
//
// Verifier satisfies strategy.Verifier, so it plugs straight into a
// strategy.Config:
//
//	verifier, err := oidc.NewVerifier(ctx, "https://accounts.google.com", oidc.VerifierConfig{})
//	s, err := strategy.New(strategy.Config{
//	    Audiences: []string{"web-client-id", "ios-client-id"},
//	    Verifier:  verifier,
//	    Resolver:  resolveUser,
//	})
//
// A token is accepted when its "aud" claim matches any of the audiences the
// caller passes to Verify.
package oidc
