package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/clitree/param"
	"strings"
)

// ExitUsage is the conventional exit code for bad command line usage.
const ExitUsage = 64

var (
	ErrStop                     = errors.New("stop dispatch")      // ErrStop may be returned from an [ActionFunc] to end dispatch without an error.
	ErrNoAction                 = errors.New("action not defined") // ErrNoAction is returned when a command without sub-commands has no action.
	ErrMissingCommand           = errors.New("missing command")
	ErrInvalidCommand           = errors.New("invalid command")
	ErrMissingParameter         = errors.New("missing parameter")
	ErrMissingRequiredOptions   = errors.New("missing required options")
	ErrMissingRequiredArguments = errors.New("missing required arguments")
)

// UsageError is a special purpose error used to signal that usage information should be shown to the user.
// This is intended to be used as an error response for validation within an [ActionFunc].
type UsageError struct {
	wrapped error
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return "usage error: " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

func (e *UsageError) Tag() string {
	return "UsageError"
}

// NewUsageError is used to create a [UsageError].
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}

// ParseError is returned when the option scanner rejects the command line, e.g. for an unknown flag.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Tag() string {
	msg := e.Err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown"), strings.HasPrefix(msg, "bad flag syntax"):
		return "InvalidOption"
	case strings.Contains(msg, "needs an argument"):
		return "MissingArgument"
	default:
		return "ParseError"
	}
}

// CommandError is returned when a command with sub-commands is given no command, or one that doesn't exist.
type CommandError struct {
	Name       string // Name is the command as given, empty if missing.
	Suggestion string // Suggestion is the closest known command, if any is close enough.
}

func (e *CommandError) Error() string {
	if len(e.Name) == 0 {
		return "Please specify a command to execute."
	}
	return "Invalid command: " + e.Name
}

func (e *CommandError) Is(target error) bool {
	if len(e.Name) == 0 {
		return target == ErrMissingCommand
	}
	return target == ErrInvalidCommand
}

func (e *CommandError) Tag() string {
	if len(e.Name) == 0 {
		return "MissingCommand"
	}
	return "InvalidCommand"
}

// Hint suggests a similar command, if there is one.
func (e *CommandError) Hint() string {
	if len(e.Suggestion) == 0 {
		return ""
	}
	return fmt.Sprintf("Did you mean %q?", e.Suggestion)
}

// MissingRequiredError lists every required option or argument that was not given.
type MissingRequiredError struct {
	Arguments bool     // Arguments is true when Names are arguments rather than options.
	Names     []string // Names are the display names of the missing parameters.
}

func (e *MissingRequiredError) Error() string {
	what := "option"
	if e.Arguments {
		what = "argument"
	}
	return fmt.Sprintf("Missing required %s(s): %s", what, strings.Join(e.Names, ", "))
}

func (e *MissingRequiredError) Is(target error) bool {
	if e.Arguments {
		return target == ErrMissingRequiredArguments
	}
	return target == ErrMissingRequiredOptions
}

func (e *MissingRequiredError) Tag() string {
	if e.Arguments {
		return "MissingRequiredArguments"
	}
	return "MissingRequiredOptions"
}

// ValidationErrors collects every problem found in a single pass, so they can all be reported together.
type ValidationErrors []error

// Add will add the error to the collection if it's not nil.
func (v *ValidationErrors) Add(err error) {
	if err == nil {
		return
	}
	*v = append(*v, err)
}

// Result returns nil if nothing was collected, or the collection otherwise.
func (v ValidationErrors) Result() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) Unwrap() []error {
	return v
}

func (v ValidationErrors) Tag() string {
	if len(v) == 1 {
		return tagOf(v[0])
	}
	return "ValidationErrors"
}

// AbortError is returned once usage information has been shown for a usage error.
// It's reported as-is by parent commands.
type AbortError struct {
	Err  error
	Node *Node
}

func (e *AbortError) Error() string {
	return e.Err.Error()
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

func (e *AbortError) ExitCode() int {
	return ExitUsage
}

// DefinitionError reports a mistake in how a command was declared.
// It matches [param.ErrDefinition] with [errors.Is].
type DefinitionError struct {
	Command string
	Reason  string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s for command %s", e.Reason, e.Command)
}

func (e *DefinitionError) Is(target error) bool {
	return target == param.ErrDefinition
}

type tagged interface {
	Tag() string
}

type hinted interface {
	Hint() string
}

// IsUsageError reports whether err was caused by how the program was invoked, rather than by a failed action.
func IsUsageError(err error) bool {
	var t tagged
	return errors.As(err, &t)
}

func tagOf(err error) string {
	var t tagged
	if errors.As(err, &t) {
		return t.Tag()
	}
	return "Error"
}

// ExitCode maps an error returned from running a command to a process exit code.
// Errors that have an ExitCode method choose their own code, any other error exits with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
