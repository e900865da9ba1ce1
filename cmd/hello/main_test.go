package main

import (
	"github.com/saylorsolutions/clitree/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHello(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expected string
	}{
		"Default language": {
			args:     []string{"World"},
			expected: "Hello, World!\n",
		},
		"French": {
			args:     []string{"--lang", "french", "Monde"},
			expected: "Bonjour, Monde!\n",
		},
		"Short flag after the name": {
			args:     []string{"Welt", "-l", "german"},
			expected: "Hallo, Welt!\n",
		},
		"Verbose": {
			args:     []string{"-V", "-l", "italian", "Mondo"},
			expected: "Options: map[help:<nil> lang:italian verbose:true version:<nil>]\nArguments: map[name:Mondo]\nCiao, Mondo!\n",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app, err := newApp()
			require.NoError(t, err)
			var out strings.Builder
			app.SetOutput(&out)
			require.NoError(t, app.Run(tc.args))
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestHello_Punctuation(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".hellorc")
	require.NoError(t, os.WriteFile(path, []byte("punctuation: \"?\"\n"), 0600))
	app, err := newApp()
	require.NoError(t, err)
	app.SetRCPath(path)
	require.NoError(t, app.LoadRC())
	var out strings.Builder
	app.SetOutput(&out)
	require.NoError(t, app.Run([]string{"Bob"}))
	assert.Equal(t, "Hello, Bob?\n", out.String())

	t.Setenv("HELLO_PUNCTUATION", ".")
	app.Reset()
	out.Reset()
	require.NoError(t, app.Run([]string{"Bob"}))
	assert.Equal(t, "Hello, Bob.\n", out.String(), "The environment should override the rc file")
}

func TestHello_Usage(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expected string
	}{
		"Missing name":     {args: nil, expected: "Missing required argument(s): NAME (MissingRequiredArguments)"},
		"Unknown language": {args: []string{"-l", "spanish", "Mundo"}, expected: "Invalid value of option LANG: spanish (InvalidArgumentValue)"},
		"Unknown flag":     {args: []string{"--shout", "World"}, expected: "unknown flag: --shout (InvalidOption)"},
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
			assert.Contains(t, msgs.String(), "Usage: hello [options] NAME")
		})
	}
}
