package utils

import "strings"

// NormalizeIdentity lowercases and trims an identity string so configured
// names compare equal to gateway-supplied ones regardless of case and
// surrounding whitespace.
func NormalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
