package oidc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/authware/idtoken/strategy"
)

// VerifierConfig configures a Verifier.
type VerifierConfig struct {
	// SupportedSigningAlgs restricts allowed signing algorithms.
	// Default: ["RS256", "ES256"].
	SupportedSigningAlgs []string

	// HTTPClient is used for discovery and JWKS requests. Defaults to a
	// client with a 10s timeout.
	HTTPClient *http.Client

	// JWKSCacheDuration controls how long JWKS keys are cached (default: 1h).
	JWKSCacheDuration time.Duration

	// SkipIssuerCheck skips issuer validation (for testing only).
	SkipIssuerCheck bool

	// Leeway is the clock skew tolerance for time-based claims.
	Leeway time.Duration
}

func (c *VerifierConfig) applyDefaults() {
	if len(c.SupportedSigningAlgs) == 0 {
		c.SupportedSigningAlgs = []string{"RS256", "ES256"}
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if c.JWKSCacheDuration == 0 {
		c.JWKSCacheDuration = time.Hour
	}
}

// Verifier validates ID tokens issued by a single OIDC provider. It is safe
// for concurrent use; the only mutable state is the JWKS cache.
type Verifier struct {
	issuer string
	config VerifierConfig
	parser *jwt.Parser
	disco  *discoveryDoc
	jwks   *jwksCache
}

// NewVerifier creates a Verifier for the given issuer. It performs OIDC
// discovery up front to find the JWKS endpoint; keys themselves are fetched
// lazily on first verification.
func NewVerifier(ctx context.Context, issuer string, cfg VerifierConfig) (*Verifier, error) {
	if issuer == "" {
		return nil, errors.New("oidc: issuer is required")
	}
	cfg.applyDefaults()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods(cfg.SupportedSigningAlgs),
		jwt.WithExpirationRequired(),
	}
	if cfg.Leeway > 0 {
		parserOpts = append(parserOpts, jwt.WithLeeway(cfg.Leeway))
	}

	v := &Verifier{
		issuer: strings.TrimRight(issuer, "/"),
		config: cfg,
		parser: jwt.NewParser(parserOpts...),
	}
	if err := v.discover(ctx); err != nil {
		return nil, fmt.Errorf("oidc: discovery failed for %s: %w", issuer, err)
	}
	return v, nil
}

// Verify checks the token's signature against the provider's JWKS and
// validates registered claims. The token's audience must match any one of the
// accepted audiences. Implements strategy.Verifier.
func (v *Verifier) Verify(ctx context.Context, token string, audiences []string) (*strategy.Ticket, error) {
	if len(audiences) == 0 {
		return nil, errors.New("oidc: no accepted audiences")
	}

	claims := jwt.MapClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, v.keyfunc(ctx))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("oidc: token is invalid")
	}

	if !v.config.SkipIssuerCheck {
		iss, _ := claims.GetIssuer()
		if iss != v.issuer {
			return nil, fmt.Errorf("oidc: issuer mismatch: got %q, expected %q", iss, v.issuer)
		}
	}

	aud, _ := claims.GetAudience()
	if !audienceMatches(aud, audiences) {
		return nil, fmt.Errorf("oidc: audience mismatch: token audience %v matches none of the accepted audiences", []string(aud))
	}

	return &strategy.Ticket{Claims: map[string]any(claims)}, nil
}

// keyfunc resolves the signing key for a token header from the JWKS cache.
func (v *Verifier) keyfunc(ctx context.Context) jwt.Keyfunc {
	return func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("oidc: token header has no kid")
		}
		return v.jwks.key(ctx, kid)
	}
}

// audienceMatches reports whether any token audience equals any accepted one.
func audienceMatches(tokenAud []string, accepted []string) bool {
	for _, ta := range tokenAud {
		for _, a := range accepted {
			if ta == a {
				return true
			}
		}
	}
	return false
}

// --- Discovery ---

type discoveryDoc struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserInfoEndpoint      string `json:"userinfo_endpoint"`
	JWKSUri               string `json:"jwks_uri"`
}

func (v *Verifier) discover(ctx context.Context) error {
	wellKnown := v.issuer + "/.well-known/openid-configuration"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wellKnown, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := v.config.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // Error on close is safe to ignore for read operations

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("discovery returned %d: %s", resp.StatusCode, string(body))
	}

	var doc discoveryDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("decode discovery document: %w", err)
	}
	if doc.JWKSUri == "" {
		return errors.New("discovery document missing jwks_uri")
	}

	v.disco = &doc
	v.jwks = &jwksCache{
		jwksURI:  doc.JWKSUri,
		client:   v.config.HTTPClient,
		cacheTTL: v.config.JWKSCacheDuration,
	}
	return nil
}

// Issuer returns the issuer URL this verifier was built for.
func (v *Verifier) Issuer() string { return v.issuer }

// DiscoveryEndpoints holds the discovered OIDC endpoints.
type DiscoveryEndpoints struct {
	Authorization string
	Token         string
	UserInfo      string
	JWKS          string
}

// DiscoveryEndpoints returns the endpoints found during discovery. Useful for
// hosts that build OAuth2 flows from the same provider.
func (v *Verifier) DiscoveryEndpoints() DiscoveryEndpoints {
	if v.disco == nil {
		return DiscoveryEndpoints{}
	}
	return DiscoveryEndpoints{
		Authorization: v.disco.AuthorizationEndpoint,
		Token:         v.disco.TokenEndpoint,
		UserInfo:      v.disco.UserInfoEndpoint,
		JWKS:          v.disco.JWKSUri,
	}
}
