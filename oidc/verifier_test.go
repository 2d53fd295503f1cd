package oidc_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/authware/idtoken/oidc"
)

// provider is a fake OIDC issuer: discovery document plus a JWKS endpoint
// backed by a generated RSA key.
type provider struct {
	srv *httptest.Server
	key *rsa.PrivateKey
	kid string
}

func newProvider(t *testing.T) *provider {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	p := &provider{key: key, kid: "test-key-1"}

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":   p.srv.URL,
			"jwks_uri": p.srv.URL + "/jwks",
		})
	})
	mux.HandleFunc("/jwks", func(w http.ResponseWriter, _ *http.Request) {
		pub := &p.key.PublicKey
		e := big.NewInt(int64(pub.E))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]any{{
				"kty": "RSA",
				"kid": p.kid,
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(e.Bytes()),
			}},
		})
	})

	p.srv = httptest.NewServer(mux)
	t.Cleanup(p.srv.Close)
	return p
}

// sign issues a token with the provider's key. Base claims are filled in and
// can be overridden per test.
func (p *provider) sign(t *testing.T, overrides map[string]any) string {
	t.Helper()

	claims := jwt.MapClaims{
		"iss": p.srv.URL,
		"sub": "user-1",
		"aud": "web-client",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	for k, v := range overrides {
		if v == nil {
			delete(claims, k)
			continue
		}
		claims[k] = v
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = p.kid
	signed, err := tok.SignedString(p.key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func (p *provider) verifier(t *testing.T) *oidc.Verifier {
	t.Helper()
	v, err := oidc.NewVerifier(context.Background(), p.srv.URL, oidc.VerifierConfig{})
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	return v
}

func TestVerify_ValidToken(t *testing.T) {
	p := newProvider(t)
	v := p.verifier(t)

	ticket, err := v.Verify(context.Background(), p.sign(t, nil), []string{"web-client"})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ticket == nil {
		t.Fatal("expected a ticket")
	}
	if got := ticket.Subject(); got != "user-1" {
		t.Fatalf("expected subject user-1, got %q", got)
	}
	if ticket.Claims["iss"] != p.srv.URL {
		t.Fatalf("unexpected issuer claim: %v", ticket.Claims["iss"])
	}
}

func TestVerify_AudienceMatchesAny(t *testing.T) {
	p := newProvider(t)
	v := p.verifier(t)

	// Token for the iOS client, strategy configured for web + iOS.
	token := p.sign(t, map[string]any{"aud": "ios-client"})
	if _, err := v.Verify(context.Background(), token, []string{"web-client", "ios-client"}); err != nil {
		t.Fatalf("expected any-of audience match, got %v", err)
	}

	// Multi-valued aud claim matching one accepted audience.
	token = p.sign(t, map[string]any{"aud": []string{"other", "web-client"}})
	if _, err := v.Verify(context.Background(), token, []string{"web-client"}); err != nil {
		t.Fatalf("expected multi-valued aud to match, got %v", err)
	}
}

func TestVerify_Rejections(t *testing.T) {
	p := newProvider(t)
	v := p.verifier(t)

	tests := []struct {
		name      string
		token     func() string
		audiences []string
		wantIn    string
	}{
		{
			name:      "audience mismatch",
			token:     func() string { return p.sign(t, nil) },
			audiences: []string{"other-client"},
			wantIn:    "audience",
		},
		{
			name: "expired",
			token: func() string {
				return p.sign(t, map[string]any{"exp": time.Now().Add(-time.Hour).Unix()})
			},
			audiences: []string{"web-client"},
			wantIn:    "expired",
		},
		{
			name: "missing expiry",
			token: func() string {
				return p.sign(t, map[string]any{"exp": nil})
			},
			audiences: []string{"web-client"},
			wantIn:    "exp",
		},
		{
			name: "issuer mismatch",
			token: func() string {
				return p.sign(t, map[string]any{"iss": "https://evil.example.com"})
			},
			audiences: []string{"web-client"},
			wantIn:    "issuer",
		},
		{
			name: "malformed",
			token: func() string {
				return "not-a-jwt"
			},
			audiences: []string{"web-client"},
			wantIn:    "token",
		},
		{
			name: "no accepted audiences",
			token: func() string {
				return p.sign(t, nil)
			},
			audiences: nil,
			wantIn:    "audiences",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ticket, err := v.Verify(context.Background(), tc.token(), tc.audiences)
			if err == nil {
				t.Fatalf("expected rejection, got ticket %+v", ticket)
			}
			if !strings.Contains(strings.ToLower(err.Error()), tc.wantIn) {
				t.Fatalf("expected error mentioning %q, got %q", tc.wantIn, err.Error())
			}
		})
	}
}

func TestVerify_UnknownKey(t *testing.T) {
	p := newProvider(t)
	v := p.verifier(t)

	// Sign with a key the JWKS does not advertise.
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss": p.srv.URL,
		"sub": "user-1",
		"aud": "web-client",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tok.Header["kid"] = "rogue-key"
	signed, err := tok.SignedString(other)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := v.Verify(context.Background(), signed, []string{"web-client"}); err == nil {
		t.Fatal("expected rejection for unknown kid")
	}
}

func TestVerify_DisallowedAlgorithm(t *testing.T) {
	p := newProvider(t)
	v := p.verifier(t)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": p.srv.URL,
		"sub": "user-1",
		"aud": "web-client",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tok.Header["kid"] = p.kid
	signed, err := tok.SignedString([]byte("shared-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := v.Verify(context.Background(), signed, []string{"web-client"}); err == nil {
		t.Fatal("expected rejection for disallowed algorithm")
	}
}

func TestNewVerifier_DiscoveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := oidc.NewVerifier(context.Background(), srv.URL, oidc.VerifierConfig{}); err == nil {
		t.Fatal("expected discovery failure")
	}
}

func TestDiscoveryEndpoints(t *testing.T) {
	p := newProvider(t)
	v := p.verifier(t)

	eps := v.DiscoveryEndpoints()
	if want := fmt.Sprintf("%s/jwks", p.srv.URL); eps.JWKS != want {
		t.Fatalf("expected JWKS endpoint %q, got %q", want, eps.JWKS)
	}
}
