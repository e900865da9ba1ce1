package rc

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"
)

// Overlay is a flat mapping of configuration keys to decoded values.
type Overlay map[string]any

// Clone returns a shallow copy of the [Overlay]. A nil Overlay clones to an empty one.
func (o Overlay) Clone() Overlay {
	out := Overlay{}
	maps.Copy(out, o)
	return out
}

// Merge returns a new [Overlay] with the values of other layered over this one.
func (o Overlay) Merge(other Overlay) Overlay {
	out := o.Clone()
	maps.Copy(out, other)
	return out
}

// Has reports whether the key is present, even if its value is empty.
func (o Overlay) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Val will get the string form of the value at key.
// If the key isn't set, or the value is empty, then the defaultVal will be returned.
func (o Overlay) Val(key string, defaultVal string) string {
	val, ok := o[key]
	if !ok || val == nil {
		return defaultVal
	}
	trimmed := strings.TrimSpace(fmt.Sprint(val))
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

// BoolIf allows translating a string value to a boolean using the given translation map.
// It's expected for the user to populate translation with a set of strings that relate to the map key.
// A whitelist for one particular value can be created by setting either the true or false slice to be empty.
// These values will be compared in a case-insensitive way.
// Values that were decoded as booleans are returned as-is.
//
// The defaultVal will be returned if the key isn't set, is empty, or can't be a boolean value.
func (o Overlay) BoolIf(key string, defaultVal bool, translation map[bool][]string) bool {
	if b, ok := o[key].(bool); ok {
		return b
	}
	sval := strings.ToLower(o.Val(key, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	if translation == nil {
		return defaultVal
	}
	for _, result := range []bool{true, false} {
		for _, candidate := range translation[result] {
			if sval == strings.ToLower(candidate) {
				return result
			}
		}
	}
	return defaultVal
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Overlay.Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Overlay.Bool], and can be changed.
)

// Bool interprets a value as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the key isn't set, is empty, or can't be a boolean value.
func (o Overlay) Bool(key string, defaultVal bool) bool {
	return o.BoolIf(key, defaultVal, map[bool][]string{
		true:  DefaultTrue,
		false: DefaultFalse,
	})
}

// Int will attempt to interpret a value as an integer, returning the defaultVal if the key isn't found or can't be a valid integer.
// Whole floating point numbers, as produced by JSON and HCL decoding, are accepted.
func (o Overlay) Int(key string, defaultVal int64) int64 {
	switch val := o[key].(type) {
	case int:
		return int64(val)
	case int64:
		return val
	case uint64:
		return int64(val)
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
		return defaultVal
	}
	sval := o.Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	ival, err := strconv.ParseInt(sval, 10, 64)
	if err != nil {
		return defaultVal
	}
	return ival
}

// Float will attempt to interpret a value as a float64, returning the defaultVal if the key isn't found or can't be a valid float64.
func (o Overlay) Float(key string, defaultVal float64) float64 {
	switch val := o[key].(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	sval := o.Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	fval, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return defaultVal
	}
	return fval
}

// Duration will attempt to interpret a value as a [time.Duration], returning the defaultVal if the key isn't found or can't be a valid [time.Duration].
func (o Overlay) Duration(key string, defaultVal time.Duration) time.Duration {
	sval := o.Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	dval, err := time.ParseDuration(sval)
	if err != nil {
		return defaultVal
	}
	return dval
}

// Strings returns a list value as strings.
// A scalar value is returned as a single element list, and nil is returned if the key isn't set.
func (o Overlay) Strings(key string) []string {
	switch val := o[key].(type) {
	case nil:
		return nil
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]string, len(val))
		for i, v := range val {
			out[i] = fmt.Sprint(v)
		}
		return out
	default:
		return []string{fmt.Sprint(val)}
	}
}
