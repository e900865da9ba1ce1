package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Values maps parameter names to their bound values.
// Unset parameters are present with a nil value.
type Values map[string]any

// Get returns the value bound to name, if it's set and of type T.
func Get[T any](vals Values, name string) (T, bool) {
	val, ok := vals[name].(T)
	return val, ok
}

// GetAll returns the values of a multiple parameter as a []T.
// False is returned if the parameter is unset, or any element isn't a T.
func GetAll[T any](vals Values, name string) ([]T, bool) {
	switch val := vals[name].(type) {
	case []T:
		return val, true
	case []any:
		out := make([]T, len(val))
		for i, e := range val {
			t, ok := e.(T)
			if !ok {
				return nil, false
			}
			out[i] = t
		}
		return out, true
	default:
		return nil, false
	}
}

// MustGet is like [Get], but panics if the value is unset or not a T.
// The developer usually knows whether a get call will fail, because required parameters are validated before an action is run.
func MustGet[T any](vals Values, name string) T {
	val, ok := Get[T](vals, name)
	if !ok {
		var zero T
		panic(fmt.Sprintf("value %q is %T, not %T", name, vals[name], zero))
	}
	return val
}

// Result is the outcome of parsing a command line against a [Node].
type Result struct {
	Command string   // Command is the sub-command token given, which is empty for nodes without sub-commands.
	Tokens  []string // Tokens are what's left over, to be parsed by the sub-command.
	Args    Values
	Opts    Values
}

// Invocation is passed to an [ActionFunc] with everything it needs from the parse.
type Invocation struct {
	Node    *Node
	Command string
	Tokens  []string
	Args    Values
	Opts    Values
	Printer *Printer
	Out     io.Writer
	Logger  *slog.Logger
}

// ErrTokenMap is matched by errors from [Invocation.MapTokens].
var ErrTokenMap = errors.New("failed to map tokens")

// MapTokens assigns the leftover [Invocation.Tokens] to targets in order.
// This is useful for actions that take free-form tokens instead of declared arguments.
//
// Fewer than minTokens tokens, or more tokens than targets, is reported as a [UsageError].
// Passing fewer than minTokens targets, or a nil target, is a programming mistake and is returned as a plain error.
// Either way, the error matches [ErrTokenMap] and no target is assigned.
func (inv *Invocation) MapTokens(minTokens int, targets ...*string) error {
	if len(targets) < minTokens {
		return fmt.Errorf("%w: %d targets can't hold %d required tokens", ErrTokenMap, len(targets), minTokens)
	}
	if i := slices.Index(targets, nil); i >= 0 {
		return fmt.Errorf("%w: target %d is nil", ErrTokenMap, i)
	}
	switch given := len(inv.Tokens); {
	case given < minTokens:
		return NewUsageError("%w: expected at least %d argument(s), got %d", ErrTokenMap, minTokens, given)
	case given > len(targets):
		return NewUsageError("%w: expected at most %d argument(s), got %d", ErrTokenMap, len(targets), given)
	}
	for i, tok := range inv.Tokens {
		*targets[i] = tok
	}
	return nil
}
