package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the fields the server cannot run without are
// set. Redis and S3 are optional integrations and are not validated here.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, ValidationError{Field: "ServerPort", Message: "SERVER_PORT is required"}.Error())
	}
	if cfg.DBHost == "" {
		errors = append(errors, ValidationError{Field: "DBHost", Message: "DB_HOST is required"}.Error())
	}
	if cfg.DBPort == "" {
		errors = append(errors, ValidationError{Field: "DBPort", Message: "DB_PORT is required"}.Error())
	}
	if cfg.DBName == "" {
		errors = append(errors, ValidationError{Field: "DBName", Message: "DB_NAME is required"}.Error())
	}
	if IsProduction() {
		if cfg.DBUser == "" {
			errors = append(errors, ValidationError{Field: "DBUser", Message: "DB_USER is required in production"}.Error())
		}
		if cfg.DBPassword == "" {
			errors = append(errors, ValidationError{Field: "DBPassword", Message: "DB_PASSWORD is required in production"}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}
	return nil
}
