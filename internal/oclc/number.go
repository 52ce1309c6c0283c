// Package oclc normalizes OCLC numbers given as integers, prefixed strings or
// comma separated lists.
package oclc

import (
	"math"
	"strconv"
	"strings"
)

// Prefixes lists the literal lead tokens accepted in front of an OCLC number.
// They are tried in order and only the first match is stripped.
var Prefixes = []string{"ocm", "ocn", "on"}

// StrToList splits s on commas and trims whitespace around each token.
// Empty tokens are kept.
func StrToList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func stripPrefix(s string) string {
	for _, p := range Prefixes {
		if strings.HasPrefix(s, p) {
			return s[len(p):]
		}
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Normalize trims token, strips a known prefix and reports whether the rest is
// made of ASCII digits only. Leading zeros are kept.
func Normalize(token string) (string, bool) {
	s := stripPrefix(strings.TrimSpace(token))
	if !isDigits(s) {
		return "", false
	}
	return s, true
}

// VerifyNumber reads a single OCLC number from an integer or a string.
//
// Integers are returned unchanged. Strings may carry surrounding whitespace,
// one of Prefixes and leading zeros. Floats and any other type are rejected.
func VerifyNumber(v any) (int, error) {
	if v == nil {
		return 0, invalid(ReasonMissing)
	}

	if n, ok, fits := intValue(v); ok {
		if !fits {
			return 0, invalid(ReasonMalformed)
		}
		return n, nil
	}

	s, ok := v.(string)
	if !ok {
		return 0, invalid(ReasonInvalidType)
	}

	digits, ok := Normalize(s)
	if !ok {
		return 0, invalid(ReasonMalformed)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, invalid(ReasonMalformed)
	}
	return n, nil
}

// intValue reports whether v is a Go integer and, if so, whether it fits in int.
func intValue(v any) (n int, ok bool, fits bool) {
	switch x := v.(type) {
	case int:
		return x, true, true
	case int8:
		return int(x), true, true
	case int16:
		return int(x), true, true
	case int32:
		return int(x), true, true
	case int64:
		if int64(int(x)) != x {
			return 0, true, false
		}
		return int(x), true, true
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return int(x), true, true
	case uint16:
		return int(x), true, true
	case uint32:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	}
	return 0, false, false
}

func fromUint(x uint64) (int, bool, bool) {
	if x > math.MaxInt {
		return 0, true, false
	}
	return int(x), true, true
}
