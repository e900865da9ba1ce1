package cli

import (
	"bufio"
	"errors"
	"github.com/google/shlex"
	"io"
	"slices"
	"strings"
)

const (
	UseCommand  = "$use"  // This is used in interactive mode to indicate that a set of sub-commands should be pushed to the invocation stack.
	BackCommand = "$back" // This is used in interactive mode to indicate that the last element on the invocation stack should be popped.
)

var (
	InteractiveFlag         = "-i"                  // InteractiveFlag specifies the argument that triggers interactive mode, see [App.AllowInteractive].
	InteractiveQuitCommands = []string{"quit", "x"} // InteractiveQuitCommands is a slice of strings that should escape from interactive mode.
)

// Interactive runs a "shell" version of the application, reading command lines from in until it's exhausted or one of the [InteractiveQuitCommands] is entered.
// Lines are split like a POSIX shell would, so quoting works as expected.
// The command tree is [Node.Reset] after every line, and errors are reported without ending the loop.
func (a *App) Interactive(in io.Reader) error {
	var (
		commandStack [][]string
	)
	prefixCommands := func() []string {
		if len(commandStack) == 0 {
			return nil
		}
		return commandStack[len(commandStack)-1]
	}
	scanner := bufio.NewScanner(in)
	p := a.printer
	p.Printf(`Running '%s' interactively. Enter %s to exit.
Use the %s command with one or more sub-commands to push them to the execution stack, and %s to pop and return.
`, a.name, strings.Join(InteractiveQuitCommands, " or "),
		UseCommand, BackCommand)
	for {
		p.Printf("%s> ", strings.Join(append([]string{a.name}, prefixCommands()...), " "))
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if slices.Contains(InteractiveQuitCommands, strings.ToLower(line)) {
			return nil
		}
		segments, err := shlex.Split(line)
		if err != nil {
			p.Println("Unable to read command:", err)
			continue
		}
		if len(segments) == 0 {
			continue
		}
		switch segments[0] {
		case UseCommand:
			newStack := append(slices.Clone(prefixCommands()), segments[1:]...)
			p.Printf("Using '%s'\n", strings.Join(newStack, " "))
			commandStack = append(commandStack, newStack)
			continue
		case BackCommand:
			if len(commandStack) == 0 {
				p.Println("Already at root command")
				continue
			}
			commandStack = commandStack[:len(commandStack)-1]
			continue
		case InteractiveFlag:
			p.Println("Cannot run interactively twice")
			continue
		}
		segments = append(slices.Clone(prefixCommands()), segments...)
		a.Reset()
		if err := a.Run(segments); err != nil {
			var abort *AbortError
			if !errors.As(err, &abort) {
				p.Println("Error running command:", err)
			}
		}
	}
}
