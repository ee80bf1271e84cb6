package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type AppID string

type App struct {
	ID        AppID     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type AppSummary struct {
	ID          AppID     `json:"id"`
	Name        string    `json:"name"`
	SecretCount int       `json:"secretCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (a App) Summary(secretCount int) AppSummary {
	return AppSummary{
		ID:          a.ID,
		Name:        a.Name,
		SecretCount: secretCount,
		CreatedAt:   a.CreatedAt,
	}
}

// Both app ids and secret keys share this charset. The check belongs to the
// boundary (CLI, HTTP, import); stores treat identifiers as opaque.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func ValidateIdentifier(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if !identifierPattern.MatchString(value) {
		return fmt.Errorf("%w: %s must contain only alphanumeric characters, underscores, and hyphens", ErrValidation, field)
	}

	return nil
}

func (id AppID) Validate() error {
	return ValidateIdentifier("id", string(id))
}

func ValidateAppName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	return nil
}
