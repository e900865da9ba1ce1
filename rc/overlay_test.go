package rc

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"time"
)

func TestOverlay_Val(t *testing.T) {
	const key = "val"

	tests := map[string]struct {
		overlay  Overlay
		expected string
	}{
		"Unset": {
			overlay:  Overlay{},
			expected: "default",
		},
		"Nil": {
			overlay:  Overlay{key: nil},
			expected: "default",
		},
		"Empty": {
			overlay:  Overlay{key: ""},
			expected: "default",
		},
		"Trimmed": {
			overlay:  Overlay{key: "\n\t abc \t\n"},
			expected: "abc",
		},
		"Number": {
			overlay:  Overlay{key: 42},
			expected: "42",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.overlay.Val(key, "default"))
		})
	}
}

func TestOverlay_BoolIf_EmptyTranslation(t *testing.T) {
	const defaultVal = true
	o := Overlay{"flag": "false"}
	assert.NotPanics(t, func() {
		got := o.BoolIf("flag", defaultVal, nil)
		assert.Equal(t, defaultVal, got)
	})
}

func TestOverlay_Bool(t *testing.T) {
	const key = "bool"
	tests := map[string]struct {
		overlay  Overlay
		expected bool
	}{
		"Unset":            {overlay: Overlay{}, expected: false},
		"Empty":            {overlay: Overlay{key: ""}, expected: false},
		"Not a bool":       {overlay: Overlay{key: "blah"}, expected: false},
		"Decoded":          {overlay: Overlay{key: true}, expected: true},
		"Truthy":           {overlay: Overlay{key: DefaultTrue[0]}, expected: true},
		"Truthy Uppercase": {overlay: Overlay{key: strings.ToUpper(DefaultTrue[1])}, expected: true},
		"Falsy":            {overlay: Overlay{key: DefaultFalse[0]}, expected: false},
		"Falsy Uppercase":  {overlay: Overlay{key: strings.ToUpper(DefaultFalse[1])}, expected: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.overlay.Bool(key, false))
		})
	}
}

func TestOverlay_Int(t *testing.T) {
	const (
		key              = "int"
		defaultVal int64 = -17
	)
	tests := map[string]struct {
		overlay  Overlay
		expected int64
	}{
		"Unset":          {overlay: Overlay{}, expected: defaultVal},
		"Empty":          {overlay: Overlay{key: ""}, expected: defaultVal},
		"Not an int":     {overlay: Overlay{key: "blah"}, expected: defaultVal},
		"Positive":       {overlay: Overlay{key: "100"}, expected: 100},
		"Negative":       {overlay: Overlay{key: "-100"}, expected: -100},
		"Zero":           {overlay: Overlay{key: "0"}, expected: 0},
		"Decoded int":    {overlay: Overlay{key: 5}, expected: 5},
		"Decoded int64":  {overlay: Overlay{key: int64(6)}, expected: 6},
		"Whole float":    {overlay: Overlay{key: 7.0}, expected: 7},
		"Fraction float": {overlay: Overlay{key: 7.5}, expected: defaultVal},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.overlay.Int(key, defaultVal))
		})
	}
}

func TestOverlay_Float(t *testing.T) {
	const (
		key                = "float"
		defaultVal float64 = -17
	)
	tests := map[string]struct {
		overlay  Overlay
		expected float64
	}{
		"Unset":        {overlay: Overlay{}, expected: defaultVal},
		"Empty":        {overlay: Overlay{key: ""}, expected: defaultVal},
		"Not a float":  {overlay: Overlay{key: "blah"}, expected: defaultVal},
		"Positive Int": {overlay: Overlay{key: "100"}, expected: 100},
		// This WILL result in rounding, because 1/3 can't be accurately represented with a float.
		"Rounded Fraction": {overlay: Overlay{key: "0.333333333333333333333333"}, expected: 1.0 / 3.0},
		"Negative Int":     {overlay: Overlay{key: "-100"}, expected: -100},
		"Zero":             {overlay: Overlay{key: "0"}, expected: 0.0},
		"Decoded":          {overlay: Overlay{key: 2.5}, expected: 2.5},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.overlay.Float(key, defaultVal))
		})
	}
}

func TestOverlay_Duration(t *testing.T) {
	const (
		key                      = "dur"
		defaultVal time.Duration = -5 * time.Minute
	)
	tests := map[string]struct {
		overlay  Overlay
		expected time.Duration
	}{
		"Unset":          {overlay: Overlay{}, expected: defaultVal},
		"Empty":          {overlay: Overlay{key: ""}, expected: defaultVal},
		"Not a duration": {overlay: Overlay{key: "blah"}, expected: defaultVal},
		"Positive":       {overlay: Overlay{key: "10m"}, expected: 10 * time.Minute},
		"Negative":       {overlay: Overlay{key: "-10m"}, expected: -10 * time.Minute},
		"Zero":           {overlay: Overlay{key: "0h"}, expected: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.overlay.Duration(key, defaultVal))
		})
	}
}

func TestOverlay_Strings(t *testing.T) {
	o := Overlay{
		"list":   []any{"a", 1},
		"typed":  []string{"x"},
		"scalar": "one",
	}
	assert.Equal(t, []string{"a", "1"}, o.Strings("list"))
	assert.Equal(t, []string{"x"}, o.Strings("typed"))
	assert.Equal(t, []string{"one"}, o.Strings("scalar"))
	assert.Nil(t, o.Strings("missing"))
}

func TestOverlay_Merge(t *testing.T) {
	base := Overlay{"a": 1, "b": 2}
	merged := base.Merge(Overlay{"b": 3, "c": 4})
	assert.Equal(t, Overlay{"a": 1, "b": 3, "c": 4}, merged)
	assert.Equal(t, Overlay{"a": 1, "b": 2}, base, "Merge must not modify the receiver")

	var empty Overlay
	assert.Equal(t, Overlay{}, empty.Clone())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RCTEST_LOG_LEVEL", "debug")
	t.Setenv("rctest_Stage", "prod")
	t.Setenv("RCTEST_", "ignored")
	t.Setenv("OTHER_LOG_LEVEL", "info")

	o := FromEnv("RCTEST_")
	assert.Equal(t, "debug", o.Val("log_level", ""))
	assert.Equal(t, "prod", o.Val("stage", ""))
	assert.False(t, o.Has(""))
	assert.False(t, o.Has("other_log_level"))
}
