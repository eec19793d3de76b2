// Package validation checks request-level input before it reaches storage.
// Layout-level degradation (reversed ranges, clamping) is handled by the
// calendar package at render time; these checks only reject input the API
// contract forbids outright.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/ganttlabs/ganttlog/internal/constants"
	apperrors "github.com/ganttlabs/ganttlog/internal/errors"
	"github.com/ganttlabs/ganttlog/internal/models"
)

var (
	colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// DayKey validates a YYYY-MM-DD date key.
func DayKey(field, value string) error {
	if value == "" {
		return apperrors.Invalidf("%s is required", field)
	}
	if _, err := time.Parse(constants.DateFormat, value); err != nil {
		return apperrors.Invalidf("%s %q is not a valid date (want YYYY-MM-DD)", field, value)
	}
	return nil
}

// Required validates a non-blank string field.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Invalidf("%s is required", field)
	}
	return nil
}

// Color validates an optional #rrggbb display token. Empty is allowed; the
// renderer falls back to the default color.
func Color(value string) error {
	if value == "" {
		return nil
	}
	if !colorPattern.MatchString(value) {
		return apperrors.Invalidf("color %q is not a #rrggbb token", value)
	}
	return nil
}

// MoodTag validates a daily-entry mood against the accepted tags.
func MoodTag(value models.Mood) error {
	for _, m := range models.Moods {
		if value == m {
			return nil
		}
	}
	return apperrors.Invalidf("mood %q is not one of the accepted tags", value)
}

// Email validates the rough shape of an email address.
func Email(value string) error {
	if value == "" {
		return apperrors.Invalidf("email is required")
	}
	if !emailPattern.MatchString(value) {
		return apperrors.Invalidf("email %q is not valid", value)
	}
	return nil
}

// Password enforces the minimum password length.
func Password(value string) error {
	if len(value) < 8 {
		return apperrors.Invalidf("password must be at least 8 characters")
	}
	return nil
}
