package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRunID creates a short, human-readable run identifier.
// Format: {operation}-{8charHexUUID}, e.g. "produce-a3f8e2b1"
func GenerateRunID(operation string) string {
	return strings.ToLower(operation) + "-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
