package rpc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Args holds the decoded "args" object of a request. Numbers arrive as
// json.Number.
type Args map[string]any

// Has reports whether key was supplied, even as null.
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// IsNull reports whether key was supplied as null.
func (a Args) IsNull(key string) bool {
	v, ok := a[key]
	return ok && v == nil
}

// String returns the string value of key. Absent, null or non-string
// values are an error.
func (a Args) String(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidArgument, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return s, nil
}

// Text renders the value of key as text. Absent and null give "".
func (a Args) Text(key string) string {
	switch v := a[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// NonEmptyString returns the value of key and whether it is a non-empty
// string. Absent, null and "" all report false.
func (a Args) NonEmptyString(key string) (string, bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return s, s != "", nil
}

// NullableString returns nil for null and a pointer for a string value.
func (a Args) NullableString(key string) (*string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a string or null", ErrInvalidArgument, key)
	}
	return &s, nil
}

// StringList accepts a comma separated string or an array of strings.
// Entries are trimmed and empty entries dropped; null yields an empty list.
func (a Args) StringList(key string) ([]string, error) {
	out := []string{}

	switch v := a[key].(type) {
	case nil:
		return out, nil
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must contain only strings", ErrInvalidArgument, key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a string or a list of strings", ErrInvalidArgument, key)
	}
}

// Bool accepts a boolean or the strings "true"/"false" in any case. Any
// other string is false.
func (a Args) Bool(key string) (bool, error) {
	switch v := a[key].(type) {
	case bool:
		return v, nil
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true"), nil
	default:
		return false, fmt.Errorf("%w: %s must be a boolean or \"true\"/\"false\"", ErrInvalidArgument, key)
	}
}

// Int accepts integers, floats (truncated) and numeric strings.
func (a Args) Int(key string) (int, error) {
	switch v := a[key].(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		f, err := v.Float64()
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, key)
		}
		return int(f), nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidArgument, key, v)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, key)
	}
}
