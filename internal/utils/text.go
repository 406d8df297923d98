package utils

import "strings"

// StripChars removes every leading and trailing rune of s found in cutset,
// repeating until neither end holds one. Inner runes are left untouched.
func StripChars(s string, cutset string) string {
	return strings.Trim(s, cutset)
}
