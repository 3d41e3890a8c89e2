package validation

import (
	"regexp"
	"strings"
)

var (
	// emailPattern accepts local@domain.tld with no embedded whitespace,
	// matching the storefront's historical check.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// saudiMobilePattern accepts ten digits starting 05 with the carrier
	// digit drawn from the allocated set.
	saudiMobilePattern = regexp.MustCompile(`^(05)(5|0|3|6|4|9|1|8|7)([0-9]{7})$`)

	whitespace = regexp.MustCompile(`\s`)
)

// IsValidEmail reports whether the value has the general shape
// local-part@domain.tld.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsValidSaudiMobile reports whether the value is a Saudi mobile number.
// Whitespace is stripped before matching.
func IsValidSaudiMobile(value string) bool {
	return saudiMobilePattern.MatchString(whitespace.ReplaceAllString(value, ""))
}

// IsPresent reports whether the value carries non-whitespace content.
func IsPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}
