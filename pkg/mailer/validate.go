package mailer

import (
	"regexp"
	"strings"
)

var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidAddress reports whether addr is a well-formed recipient address:
// structural local@domain.tld shape, total length at most 254 and local part
// at most 64 characters. Pure function, safe for concurrent use.
func ValidAddress(addr string) bool {
	if addr == "" || len(addr) > 254 {
		return false
	}
	local, _, found := strings.Cut(addr, "@")
	if !found || len(local) > 64 {
		return false
	}
	return addressPattern.MatchString(addr)
}
