// Package validation provides struct-tag validation for configuration types.
//
// Config structs declare constraints with validator tags and call Validate
// from their own Validate methods:
//
//	type Config struct {
//	    Audiences []string `mapstructure:"audiences" validate:"required,min=1"`
//	}
//	err := validation.Validate(cfg)
//
// Errors are returned as *errors.AppError with per-field details.
package validation
