// Package strategy implements bearer-token request authentication.
//
// A Strategy locates an ID or access token on an inbound request, hands it to
// a Verifier (the identity provider's token verification, injected at
// construction), and maps the result to an application principal through a
// host-supplied Resolver. Each call to Authenticate produces exactly one
// terminal Outcome: success, failure, or error.
//
//	verifier, _ := oidc.NewVerifier(ctx, "https://accounts.google.com", oidcCfg)
//	s, err := strategy.New(strategy.Config{
//	    Audiences: []string{"my-client-id"},
//	    Verifier:  verifier,
//	    Resolver: func(ctx context.Context, claims map[string]any, subject string) (any, strategy.Info, error) {
//	        user, err := store.FindByProviderID(ctx, subject)
//	        if err != nil {
//	            return nil, strategy.Info{}, err
//	        }
//	        if user == nil {
//	            return nil, strategy.Info{Message: "account not found"}, nil
//	        }
//	        return user, strategy.Info{}, nil
//	    },
//	})
//
// The Strategy is immutable after construction and safe for concurrent use.
// Verification and principal resolution follow this contract:
//
//   - verifier error      → failure (401, message from the error)
//   - verifier nil ticket → failure (401, "No login ticket returned")
//   - resolver error      → error outcome (host fault, 5xx-class)
//   - resolver nil user   → failure (host declined, info caller-supplied)
//   - resolver user       → success
//
// Tokens are accepted from a body field, query parameter, header, or route
// parameter named "id_token" or "access_token", or from an Authorization
// header of the exact form "Bearer <token>". See LocateToken for the
// precedence order.
package strategy
