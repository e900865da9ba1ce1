package main

import (
	"github.com/saylorsolutions/clitree/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/big"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expected string
	}{
		"Capitalize": {
			args:     []string{"text", "capitalize", "hELLO world"},
			expected: "Capitalize the given string \"hELLO world\":\nHello world\n",
		},
		"Join": {
			args:     []string{"text", "join", "-d", "|", "a", "b", "c"},
			expected: "Join strings [\"a\", \"b\", \"c\"] with \"|\":\na|b|c\n",
		},
		"Join default delimiter": {
			args:     []string{"text", "join", "a", "b"},
			expected: "Join strings [\"a\", \"b\"] with \", \":\na, b\n",
		},
		"Replace": {
			args:     []string{"text", "replace", "a-b-c", "-", "+"},
			expected: "Replace \"-\" with \"+\" in \"a-b-c\":\na+b+c\n",
		},
		"Replace removes": {
			args:     []string{"text", "replace", "a-b-c", "-"},
			expected: "Replace \"-\" with \"\" in \"a-b-c\":\nabc\n",
		},
		"Rationalize": {
			args:     []string{"number", "rationalize", "0.333"},
			expected: "Rationalize value 0.333:\n333/1000\n",
		},
		"Rationalize with precision": {
			args:     []string{"number", "rationalize", "-p", "0.01", "0.333"},
			expected: "Rationalize value 0.333 with precision 0.01:\n1/3\n",
		},
		"Round": {
			args:     []string{"number", "round", "-d", "2", "3.14159"},
			expected: "Round value 3.14159 with precision in 2 decimal digits\n3.14\n",
		},
		"Round to whole": {
			args:     []string{"number", "round", "--digits", "0", "2.5"},
			expected: "Round value 2.5 with precision in 0 decimal digits\n3\n",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app, err := newApp()
			require.NoError(t, err)
			var out, msgs strings.Builder
			app.SetOutput(&out)
			app.Printer().Redirect(&msgs)
			require.NoError(t, app.Run(tc.args), msgs.String())
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestConvert_Usage(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expected string
	}{
		"Missing digits":   {args: []string{"number", "round", "3.5"}, expected: "Missing required option(s): DIGITS (MissingRequiredOptions)"},
		"Bad value":        {args: []string{"number", "round", "-d", "1", "pi"}, expected: "(TypeCastingFailed)"},
		"Negative epsilon": {args: []string{"number", "rationalize", "-p", "-1", "0.5"}, expected: "(InvalidArgumentValue)"},
		"Typo":             {args: []string{"nubmer"}, expected: "Did you mean \"number\"?"},
		"Replace too few":  {args: []string{"text", "replace", "abc"}, expected: "expected at least 2 argument(s), got 1 (UsageError)"},
		"Replace too many": {args: []string{"text", "replace", "a", "b", "c", "d"}, expected: "expected at most 3 argument(s), got 4 (UsageError)"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app, err := newApp()
			require.NoError(t, err)
			var msgs strings.Builder
			app.Printer().Redirect(&msgs)
			err = app.Run(tc.args)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
			assert.Contains(t, msgs.String(), tc.expected)
		})
	}
}

func TestConvert_Commands(t *testing.T) {
	app, err := newApp()
	require.NoError(t, err)
	assert.Equal(t, []string{"text", "number", "help"}, app.ListCommands())
	assert.Equal(t, "1.0.0", app.Version())
}

func TestSimplestBetween(t *testing.T) {
	tests := map[string]struct {
		lo, hi   string
		expected string
	}{
		"Third":         {lo: "0.323", hi: "0.343", expected: "1/3"},
		"Whole":         {lo: "2.9", hi: "3.1", expected: "3"},
		"Lower bound":   {lo: "2", hi: "2.5", expected: "2"},
		"Spanning zero": {lo: "-0.5", hi: "0.5", expected: "0"},
		"Negative":      {lo: "-0.343", hi: "-0.323", expected: "-1/3"},
		"Pi":            {lo: "3.141", hi: "3.143", expected: "22/7"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			lo, _ := new(big.Rat).SetString(tc.lo)
			hi, _ := new(big.Rat).SetString(tc.hi)
			assert.Equal(t, tc.expected, simplestBetween(lo, hi).RatString())
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Hello", capitalize("hELLO"))
	assert.Equal(t, "Élan", capitalize("élan"))
}
