package validate

import (
	"regexp"
	"strings"
)

const (
	MinUsernameLen   = 3
	MaxUsernameLen   = 15
	MinPasswordLen   = 6
	MaxPasswordLen   = 20
	AccountNumberLen = 16
)

var (
	reUsername = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	reAccount  = regexp.MustCompile(`^[0-9]{16}$`)
)

// Username trims and checks a username: 3-15 characters, letters and digits
// only.
func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < MinUsernameLen || len(s) > MaxUsernameLen {
		return "", false
	}
	return s, reUsername.MatchString(s)
}

// Password enforces 6-20 characters with at least one letter and one digit.
func Password(s string) bool {
	l := len(s)
	if l < MinPasswordLen || l > MaxPasswordLen {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
			hasLetter = true
		case '0' <= r && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// AccountNumber checks a bank account number: exactly 16 digits.
func AccountNumber(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reAccount.MatchString(s)
}
