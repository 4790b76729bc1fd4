// ABOUTME: Input validation for identifiers taken from request paths
// ABOUTME: Rejects malformed component and build IDs before lookups

package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// componentIDPattern matches catalog ids (alphanumeric, dots, hyphens, underscores)
var componentIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,127}$`)

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1 // Remove control characters
		}
		return r
	}, s)
}

// ValidateComponentID validates that a component id has a safe format
func ValidateComponentID(id string) error {
	if id == "" {
		return fmt.Errorf("component id cannot be empty")
	}
	if !componentIDPattern.MatchString(id) {
		return fmt.Errorf("invalid component id format: %s", sanitizeForLog(id))
	}
	return nil
}

// ValidateBuildID validates that a build id is a UUID
func ValidateBuildID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid build id format: %s", sanitizeForLog(id))
	}
	return nil
}
