package client

import (
	"fmt"
	"regexp"
	"strings"
)

// siteIDRegex validates site IDs: 1-50 characters, letters, digits,
// underscore and hyphen only (matches Rhasspy siteId conventions).
var siteIDRegex = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,50}$`)

// ValidateText rejects empty or all-whitespace input sentences.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

// ValidateSiteID validates a Rhasspy site identifier.
func ValidateSiteID(siteID string) error {
	if siteID == "" {
		return fmt.Errorf("siteId is required")
	}
	if !siteIDRegex.MatchString(siteID) {
		return fmt.Errorf("siteId must be 1-50 characters containing only letters, digits, underscore, and hyphen")
	}
	return nil
}

// ValidateWord validates a single dictionary word for Lookup.
func ValidateWord(word string) error {
	if word == "" {
		return fmt.Errorf("word is required")
	}
	if strings.ContainsAny(word, " \t\r\n") {
		return fmt.Errorf("word must not contain whitespace")
	}
	return nil
}
