package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ntshop/internal/validate"
)

func TestUsername(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"ali123", true},
		{"abc", true},
		{"  ali123  ", true}, // trimmed
		{"ab", false},
		{"thisusernameistoolong", false},
		{"ali_123", false},
		{"ali 123", false},
		{"", false},
	}
	for _, tc := range cases {
		_, ok := validate.Username(tc.in)
		assert.Equal(t, tc.ok, ok, "username %q", tc.in)
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"secret1", true},
		{"a1b2c3", true},
		{"abc1x", false},         // too short
		{"lettersonly", false},   // no digit
		{"12345678", false},      // no letter
		{"a1b2c3d4e5f6g7h8i9j0k", false}, // too long
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, validate.Password(tc.in), "password %q", tc.in)
	}
}

func TestAccountNumber(t *testing.T) {
	_, ok := validate.AccountNumber("1234567890123456")
	assert.True(t, ok)
	_, ok = validate.AccountNumber(" 1234567890123456 ")
	assert.True(t, ok)
	_, ok = validate.AccountNumber("123456789012345")
	assert.False(t, ok)
	_, ok = validate.AccountNumber("12345678901234ab")
	assert.False(t, ok)
}
