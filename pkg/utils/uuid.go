package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Replace spaces with hyphens
	s = strings.ReplaceAll(s, " ", "-")

	// Remove non-alphanumeric characters except hyphens
	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	// Remove multiple consecutive hyphens
	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	// Trim hyphens from start and end
	s = strings.Trim(s, "-")

	return s
}

// GenerateOrderNumber generates a unique order number
func GenerateOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateSKU generates a product SKU from the product name
func GenerateSKU(name string) string {
	prefix := regexp.MustCompile("[^A-Za-z0-9]").ReplaceAllString(name, "")
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	if prefix == "" {
		prefix = "PRD"
	}
	return strings.ToUpper(prefix) + "-" + strings.ToUpper(uuid.New().String()[:8])
}
