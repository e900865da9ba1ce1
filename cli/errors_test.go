package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/clitree/param"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func TestUsageError_Is(t *testing.T) {
	err := NewUsageError("test")
	assert.ErrorIs(t, err, &UsageError{})

	var ErrTesting = errors.New("test")
	err2 := NewUsageError("%w", ErrTesting)
	assert.ErrorIs(t, err2, &UsageError{})
	assert.ErrorIs(t, err2, ErrTesting)
}

func TestUsageError_Unwrap(t *testing.T) {
	var ErrTesting = errors.New("test")
	err := NewUsageError("%w", ErrTesting)
	var targetUsage = new(UsageError)
	assert.True(t, errors.As(err, &targetUsage))
}

func TestUsageError_Error(t *testing.T) {
	err := &UsageError{}
	assert.Equal(t, "usage error", err.Error(), "Default error output should be returned when there is no wrapping error")
	err2 := NewUsageError("test")
	assert.Equal(t, "usage error: test", err2.Error(), "The wrapped error's output should be returned when Error is called")
}

type exitCodeErr int

func (e exitCodeErr) Error() string {
	return fmt.Sprintf("exit %d", int(e))
}

func (e exitCodeErr) ExitCode() int {
	return int(e)
}

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected int
	}{
		"Success":     {err: nil, expected: 0},
		"Failure":     {err: errors.New("failed"), expected: 1},
		"Abort":       {err: &AbortError{Err: &CommandError{}}, expected: ExitUsage},
		"Wrapped":     {err: fmt.Errorf("wrapped: %w", &AbortError{Err: &CommandError{}}), expected: ExitUsage},
		"Custom code": {err: exitCodeErr(3), expected: 3},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExitCode(tc.err))
		})
	}
}

func TestIsUsageError(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected bool
	}{
		"Plain":         {err: errors.New("failed"), expected: false},
		"Usage":         {err: NewUsageError("bad"), expected: true},
		"Parse":         {err: &ParseError{Err: errors.New("unknown flag: --x")}, expected: true},
		"Command":       {err: &CommandError{Name: "x"}, expected: true},
		"Missing":       {err: &MissingRequiredError{Names: []string{"X"}}, expected: true},
		"Cast":          {err: &param.CastError{Err: errors.New("bad")}, expected: true},
		"Value":         {err: &param.ValueError{}, expected: true},
		"Collected":     {err: ValidationErrors{errors.New("a"), &param.ValueError{}}, expected: true},
		"Definition":    {err: &DefinitionError{}, expected: false},
		"Wrapped usage": {err: fmt.Errorf("action: %w", NewUsageError("bad")), expected: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsUsageError(tc.err))
		})
	}
}

func TestErrorTags(t *testing.T) {
	tests := map[string]struct {
		err error
		tag string
		msg string
	}{
		"Missing command": {
			err: &CommandError{},
			tag: "MissingCommand",
			msg: "Please specify a command to execute.",
		},
		"Invalid command": {
			err: &CommandError{Name: "nope"},
			tag: "InvalidCommand",
			msg: "Invalid command: nope",
		},
		"Missing options": {
			err: &MissingRequiredError{Names: []string{"A", "B"}},
			tag: "MissingRequiredOptions",
			msg: "Missing required option(s): A, B",
		},
		"Missing arguments": {
			err: &MissingRequiredError{Arguments: true, Names: []string{"NAME"}},
			tag: "MissingRequiredArguments",
			msg: "Missing required argument(s): NAME",
		},
		"Unknown flag": {
			err: &ParseError{Err: errors.New("unknown flag: --nope")},
			tag: "InvalidOption",
			msg: "unknown flag: --nope",
		},
		"Flag without value": {
			err: &ParseError{Err: errors.New("flag needs an argument: --name")},
			tag: "MissingArgument",
			msg: "flag needs an argument: --name",
		},
		"Single collected": {
			err: ValidationErrors{&CommandError{}},
			tag: "MissingCommand",
			msg: "Please specify a command to execute.",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.tag, tagOf(tc.err))
			assert.Equal(t, tc.msg, tc.err.Error())
		})
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	errs.Add(nil)
	assert.NoError(t, errs.Result())

	errs.Add(&MissingRequiredError{Names: []string{"A"}})
	errs.Add(&MissingRequiredError{Arguments: true, Names: []string{"B"}})
	err := errs.Result()
	assert.ErrorIs(t, err, ErrMissingRequiredOptions)
	assert.ErrorIs(t, err, ErrMissingRequiredArguments)
	assert.Equal(t, "Missing required option(s): A\nMissing required argument(s): B", err.Error())
	assert.Equal(t, "ValidationErrors", tagOf(err))
}

func TestDefinitionError_Is(t *testing.T) {
	err := &DefinitionError{Command: "app", Reason: "bad"}
	assert.ErrorIs(t, err, param.ErrDefinition)
	assert.Equal(t, "bad for command app", err.Error())
}

func ExampleNewUsageError() {
	app := MustNewApp("parent", func(n *Node) {
		n.Command("command", func(n *Node) {
			n.SetSummary("test command")
			n.Action(func(inv *Invocation) error {
				return NewUsageError("test usage error")
			})
		})
	})
	// Done for testing purposes
	app.Printer().Redirect(os.Stdout)
	err := app.Run([]string{"command"})
	fmt.Println("Exit code:", ExitCode(err))

	// Output:
	// usage error: test usage error (UsageError)
	//
	// Usage: parent command [options]
	//
	//   Options:
	//     -h, --help                       Show this help message.
	//
	//   Summary:
	//     test command
	//
	// Exit code: 64
}
