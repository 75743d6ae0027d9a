package mapping

import "regexp"

// codePattern is the accepted SKU shape: letters, digits, underscore, and
// hyphen, anchored at both ends. Whitespace and punctuation are rejected.
var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// IsValidCode reports whether code has the accepted SKU format. The empty
// string is invalid. Codes failing this check are routed straight to the
// unmapped queue and never scored.
func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}
