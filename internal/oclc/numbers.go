package oclc

import (
	"reflect"
	"strconv"
	"strings"
)

// VerifyNumbers reads a batch of OCLC numbers from a comma separated string or
// a slice of strings or integers, and returns them as digit strings in input
// order. Prefixes and whitespace are removed, leading zeros are kept.
//
// Validation is all or nothing: a single bad member fails the whole batch and
// the error does not say which one.
func VerifyNumbers(v any) ([]string, error) {
	tokens, err := tokensOf(v)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(tokens))
	for i, t := range tokens {
		n, ok := Normalize(t)
		if !ok {
			return nil, invalid(ReasonInvalidMember)
		}
		out[i] = n
	}
	return out, nil
}

func tokensOf(v any) ([]string, error) {
	switch x := v.(type) {
	case nil:
		return nil, invalid(ReasonInvalidList)
	case string:
		if x == "" {
			return nil, invalid(ReasonInvalidList)
		}
		tokens := StrToList(x)
		if allEmpty(tokens) {
			return nil, invalid(ReasonInvalidList)
		}
		return tokens, nil
	case []string:
		if len(x) == 0 {
			return nil, invalid(ReasonInvalidList)
		}
		return x, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, invalid(ReasonInvalidMember)
	}
	if rv.Len() == 0 {
		return nil, invalid(ReasonInvalidList)
	}
	out := make([]string, rv.Len())
	for i := range out {
		s, ok := memberString(rv.Index(i))
		if !ok {
			return nil, invalid(ReasonInvalidMember)
		}
		out[i] = s
	}
	return out, nil
}

// memberString renders a string or integer element of a batch in decimal.
func memberString(rv reflect.Value) (string, bool) {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	}
	return "", false
}

func allEmpty(tokens []string) bool {
	for _, t := range tokens {
		if t != "" {
			return false
		}
	}
	return true
}

// Join renders normalized numbers as a comma separated query value.
func Join(numbers []string) string {
	return strings.Join(numbers, ",")
}
