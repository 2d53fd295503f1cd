package validation_test

import (
	"strings"
	"testing"

	"github.com/authware/idtoken/errors"
	"github.com/authware/idtoken/validation"
)

type sampleConfig struct {
	Issuer    string   `mapstructure:"issuer" validate:"required,url"`
	Audiences []string `mapstructure:"audiences" validate:"required,min=1,dive,required"`
}

func TestValidate_OK(t *testing.T) {
	cfg := sampleConfig{
		Issuer:    "https://accounts.google.com",
		Audiences: []string{"web-client"},
	}
	if err := validation.Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		cfg       sampleConfig
		wantField string
	}{
		{"missing issuer", sampleConfig{Audiences: []string{"a"}}, "issuer"},
		{"bad issuer url", sampleConfig{Issuer: "not a url", Audiences: []string{"a"}}, "issuer"},
		{"no audiences", sampleConfig{Issuer: "https://x.example.com"}, "audiences"},
		{"empty audience entry", sampleConfig{Issuer: "https://x.example.com", Audiences: []string{""}}, "audiences"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.Validate(tc.cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput {
				t.Fatalf("unexpected code: %s", appErr.Code)
			}
			if !strings.Contains(appErr.Message, tc.wantField) {
				t.Fatalf("expected message naming %q, got %q", tc.wantField, appErr.Message)
			}
		})
	}
}
