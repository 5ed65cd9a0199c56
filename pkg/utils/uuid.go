package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

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
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")

	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// GenerateReceiptNo generates a unique register receipt number
func GenerateReceiptNo() string {
	return "POS-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateOrderNo generates a unique web order number
func GenerateOrderNo() string {
	return "DP-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateBarcode generates a numeric product barcode with a DP prefix.
// CODE39 on thermal printers handles digits best, so the body is numeric.
func GenerateBarcode() string {
	return fmt.Sprintf("DP%06d%04d", time.Now().Unix()%1000000, rand.Intn(10000))
}
