package cli

import (
	"errors"
	"github.com/agext/levenshtein"
	"github.com/saylorsolutions/clitree/param"
	"log/slog"
	"slices"
)

// Run parses tokens against this node and dispatches, recursing into sub-commands as needed.
// The tokens are not modified.
//
// Help and version requests are answered before anything is validated.
// Otherwise, required parameters and the sub-command are validated before the action is called.
// Usage errors are reported with this node's help, and returned as an [*AbortError].
func (n *Node) Run(tokens []string) error {
	buf := slices.Clone(tokens)
	return n.RunInPlace(&buf)
}

// RunInPlace is like [Node.Run], but tokens are consumed from the caller's buffer as they're parsed.
func (n *Node) RunInPlace(tokens *[]string) error {
	err := n.process(tokens)
	if err == nil || !IsUsageError(err) {
		return err
	}
	var abort *AbortError
	if errors.As(err, &abort) {
		return err
	}
	n.logger().Debug("Aborting", "command", n.Path(), "error", err)
	n.showError(err)
	if helpErr := n.ShowHelp(); helpErr != nil {
		n.logger().Error("Failed to show help", "command", n.Path(), "error", helpErr)
	}
	return &AbortError{Err: err, Node: n}
}

func (n *Node) process(tokens *[]string) error {
	log := n.logger()
	res, err := n.ParseInPlace(tokens)
	var perr *ParseError
	if errors.As(err, &perr) {
		return err
	}
	invalid := err
	log.Debug("Parsed command line", "command", n.Path(), "opts", res.Opts, "args", res.Args, "subcommand", res.Command, "tokens", res.Tokens)

	if n.requested(helpName) {
		return n.ShowHelp()
	}
	if len(n.version) > 0 && n.requested(versionName) {
		return n.ShowVersion()
	}
	if err := n.validateRequired(invalid); err != nil {
		return err
	}
	var child *Node
	if n.HasCommands() {
		if child, err = n.validateCommand(res.Command); err != nil {
			return err
		}
	}

	action, err := n.resolveAction()
	if err != nil {
		return err
	}
	inv := &Invocation{
		Node:    n,
		Command: res.Command,
		Tokens:  slices.Clone(res.Tokens),
		Args:    res.Args,
		Opts:    res.Opts,
		Printer: n.Printer(),
		Out:     n.app.out,
		Logger:  log,
	}
	if err := n.app.runHooks(inv); err != nil {
		return err
	}
	if err := action(inv); err != nil {
		if errors.Is(err, ErrStop) {
			log.Debug("Dispatch stopped by action", "command", n.Path())
			return nil
		}
		return err
	}
	if child == nil {
		return nil
	}
	log.Debug("Dispatching", "command", child.Path())
	return child.RunInPlace(tokens)
}

func (n *Node) requested(name string) bool {
	p, ok := n.options.get(name)
	return ok && p.Value() == true
}

// paramKey identifies a parameter in validation errors.
type paramKey struct {
	kind param.Kind
	name string
}

// validateRequired reports the required parameters that were not given, together with the parameters that failed casting or validation.
// A required parameter that failed is only reported once.
func (n *Node) validateRequired(invalid error) error {
	var (
		errs   ValidationErrors
		failed = map[paramKey]bool{}
	)
	for _, err := range flattenErrors(invalid) {
		var (
			cerr *param.CastError
			verr *param.ValueError
		)
		switch {
		case errors.As(err, &cerr):
			failed[paramKey{cerr.Kind, cerr.DisplayName}] = true
		case errors.As(err, &verr):
			failed[paramKey{verr.Kind, verr.DisplayName}] = true
		}
		errs.Add(err)
	}
	missing := func(params []*param.Parameter) []string {
		var names []string
		for _, p := range params {
			if p.Missing() && !failed[paramKey{p.Kind(), p.DisplayName()}] {
				names = append(names, p.DisplayName())
			}
		}
		return names
	}
	if names := missing(n.options.list()); len(names) > 0 {
		errs.Add(&MissingRequiredError{Names: names})
	}
	if names := missing(n.arguments.list()); len(names) > 0 {
		errs.Add(&MissingRequiredError{Arguments: true, Names: names})
	}
	return errs.Result()
}

func flattenErrors(err error) []error {
	if err == nil {
		return nil
	}
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return errs
	}
	return []error{err}
}

func (n *Node) validateCommand(name string) (*Node, error) {
	if len(name) == 0 {
		return nil, &CommandError{}
	}
	child, ok := n.commands.Get(name)
	if !ok {
		return nil, &CommandError{Name: name, Suggestion: n.suggest(name)}
	}
	return child, nil
}

// maxSuggestDistance is the most edits a command name may be from the given name to be suggested.
const maxSuggestDistance = 2

func (n *Node) suggest(name string) string {
	var (
		best     string
		bestDist = maxSuggestDistance + 1
	)
	name = cleanseKey(name)
	for _, candidate := range n.commands.names() {
		dist := levenshtein.Distance(name, candidate, nil)
		if dist < bestDist || (dist == bestDist && candidate < best) {
			best, bestDist = candidate, dist
		}
	}
	if bestDist > maxSuggestDistance {
		return ""
	}
	return best
}

func (n *Node) showError(err error) {
	p := n.Printer()
	var errs ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			p.Printf("%s (%s)\n", e.Error(), tagOf(e))
		}
	} else {
		p.Printf("%s (%s)\n", err.Error(), tagOf(err))
	}
	var h hinted
	if errors.As(err, &h) && len(h.Hint()) > 0 {
		p.Println(h.Hint())
	}
	p.Println()
}

// ShowHelp renders help for this node with the application's [Renderer].
func (n *Node) ShowHelp() error {
	return n.app.renderer.RenderHelp(n.Printer(), n)
}

// ShowVersion renders the version with the application's [Renderer].
func (n *Node) ShowVersion() error {
	return n.app.renderer.RenderVersion(n.Printer(), n)
}

// Printer returns the application's [Printer].
func (n *Node) Printer() *Printer {
	return n.app.Printer()
}

func (n *Node) logger() *slog.Logger {
	return n.app.Logger()
}
