package document

import (
	"errors"
	"strings"
)

var (
	ErrInvalidLength  = errors.New("identifier must contain exactly 11 digits")
	ErrRepeatedDigits = errors.New("identifier with all repeated digits is invalid")
	ErrChecksum       = errors.New("identifier checksum verification failed")
)

const numberLength = 11

// Number is a normalized, checksum-verified document identifier (CPF style:
// 9 digits plus two mod-11 check digits).
type Number string

// Parse strips formatting characters and validates the result. It never touches
// the network; callers rely on it to fail fast before any priced work begins.
func Parse(raw string) (Number, error) {
	digits := normalize(raw)

	if len(digits) != numberLength {
		return "", ErrInvalidLength
	}
	if allSame(digits) {
		return "", ErrRepeatedDigits
	}
	if !validChecksum(digits) {
		return "", ErrChecksum
	}

	return Number(digits), nil
}

func (n Number) String() string {
	return string(n)
}

// Masked hides the middle digits for log output.
func (n Number) Masked() string {
	s := string(n)
	if len(s) != numberLength {
		return "***"
	}
	return s[:3] + "*****" + s[8:]
}

func normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// validChecksum verifies the two trailing check digits. Each is a weighted
// mod-11 remainder: remainder < 2 maps to 0, otherwise 11 - remainder.
func validChecksum(digits string) bool {
	return checkDigit(digits, 9) == int(digits[9]-'0') &&
		checkDigit(digits, 10) == int(digits[10]-'0')
}

func checkDigit(digits string, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(digits[i]-'0') * (pos + 1 - i)
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
