package cli

import (
	"fmt"
	"github.com/saylorsolutions/clitree/param"
	"slices"
	"strings"
)

const (
	helpName    = "help"
	versionName = "version"
)

// Configure declares the parameters, sub-commands, and action of a [Node].
type Configure func(n *Node)

// ActionFunc is executed when a [Node] is dispatched, once its parameters are parsed and validated.
type ActionFunc func(inv *Invocation) error

// Node is a command in a tree of commands, from the application at the root down to leaf commands.
//
// A Node is built by [Configure] functions, which use the declaration methods like [Node.Option] and [Node.Command].
// Declaration methods panic with an error matching [param.ErrDefinition] when a declaration is invalid, since that's a bug in the program, not a user error.
// [NewApp] recovers these panics and returns the error.
type Node struct {
	name          string
	parent        *Node
	app           *App
	options       paramSet
	arguments     paramSet
	commands      CommandSet
	action        ActionFunc
	actionName    string
	handlers      map[string]ActionFunc
	summary       string
	description   string
	version       string
	synopsis      string
	autoHelp      bool
	autoHelpAdded bool
	chain         []string
	result        *Result
}

func newNode(app *App, parent *Node, name string) *Node {
	return &Node{
		name:     name,
		parent:   parent,
		app:      app,
		autoHelp: true,
	}
}

func (n *Node) configure(configs []Configure) {
	for _, config := range configs {
		if config != nil {
			config(n)
		}
	}
	if n.autoHelp && !n.options.has(helpName) {
		n.declareAutoHelp(!n.shortTaken("h", helpName))
	}
}

const autoHelpDescription = "Show this help message."

// declareAutoHelp declares the automatic help switch, keeping its place among the options if it's already declared.
func (n *Node) declareAutoHelp(withShort bool) {
	var attrs []param.Attr
	if withShort {
		attrs = append(attrs, param.Short("h"))
	}
	p, err := param.New(param.Switch, helpName, autoHelpDescription, attrs...)
	if err != nil {
		panic(err)
	}
	n.options.put(p)
	n.autoHelpAdded = true
}

func (n *Node) definitionErr(format string, args ...any) error {
	return &DefinitionError{Command: strings.Join(n.Chain(), " "), Reason: fmt.Sprintf(format, args...)}
}

// Name is the token used to select this command from its parent.
// The root node is named for the program.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// App returns the application this node belongs to.
func (n *Node) App() *App {
	return n.app
}

// Chain returns the names from the root down to this node.
func (n *Node) Chain() []string {
	if n.chain == nil {
		if n.parent == nil {
			n.chain = []string{n.name}
		} else {
			n.chain = append(slices.Clone(n.parent.Chain()), n.name)
		}
	}
	return slices.Clone(n.chain)
}

// Path is the [Node.Chain] joined with spaces, as it would be typed.
func (n *Node) Path() string {
	return strings.Join(n.Chain(), " ")
}

func (n *Node) Summary() string {
	return n.summary
}

func (n *Node) Description() string {
	return n.description
}

// Version returns the declared version, which is empty unless [Node.SetVersion] was called.
func (n *Node) Version() string {
	return n.version
}

// Synopsis returns the custom synopsis set with [Node.SetSynopsis], if any.
func (n *Node) Synopsis() string {
	return n.synopsis
}

// SetSummary sets the one line description shown in command listings.
func (n *Node) SetSummary(summary string) *Node {
	n.summary = summary
	return n
}

// SetDescription sets the long description shown in help.
func (n *Node) SetDescription(description string) *Node {
	n.description = description
	return n
}

// SetSynopsis overrides the generated synopsis in the usage banner.
func (n *Node) SetSynopsis(synopsis string) *Node {
	n.synopsis = synopsis
	return n
}

// SetVersion declares a version, and a "--version" switch with a "-v" alias to show it.
// The attrs may override the switch's configuration.
func (n *Node) SetVersion(version string, attrs ...param.Attr) *Node {
	if len(strings.TrimSpace(version)) == 0 {
		panic(n.definitionErr("empty version"))
	}
	n.version = version
	attrs = append([]param.Attr{param.Short("v")}, attrs...)
	n.DefineParameter(param.Switch, versionName, fmt.Sprintf("Show %s version.", n.Root().name), attrs...)
	return n
}

// Help declares the "--help" switch with a "-h" alias.
// This is done automatically unless [Node.NoAutoHelp] is called, so this is only needed to customize the switch.
// An empty desc uses the default description.
func (n *Node) Help(desc string, attrs ...param.Attr) *Node {
	if len(desc) == 0 {
		desc = autoHelpDescription
	}
	attrs = append([]param.Attr{param.Short("h")}, attrs...)
	n.DefineParameter(param.Switch, helpName, desc, attrs...)
	return n
}

// NoAutoHelp stops the "--help" switch from being declared automatically.
func (n *Node) NoAutoHelp() *Node {
	n.autoHelp = false
	if n.autoHelpAdded {
		n.options.remove(helpName)
		n.autoHelpAdded = false
	}
	return n
}

// DefineParameter declares a parameter, replacing any previous declaration with the same name.
// Arguments and flags are kept separately, so an option and an argument may share a name.
func (n *Node) DefineParameter(kind param.Kind, name, description string, attrs ...param.Attr) *param.Parameter {
	p, err := param.New(kind, name, description, attrs...)
	if err != nil {
		panic(err)
	}
	if !kind.IsFlag() {
		n.arguments.put(p)
		return p
	}
	if n.autoHelpAdded && name != helpName && len(p.Short()) > 0 {
		// The automatic help switch gives up its short flag to explicit declarations.
		if help, ok := n.options.get(helpName); ok && help.Short() == p.Short() {
			n.declareAutoHelp(false)
		}
	}
	if len(p.Short()) > 0 && n.shortTaken(p.Short(), name) {
		panic(n.definitionErr("short flag -%s of %s is already used", p.Short(), p.DisplayName()))
	}
	for _, other := range n.options.list() {
		if other.Name() != name && other.FlagName() == p.FlagName() {
			panic(n.definitionErr("flag --%s of %s is already used by %s", p.FlagName(), p.DisplayName(), other.DisplayName()))
		}
	}
	if name == helpName {
		n.autoHelpAdded = false
	}
	n.options.put(p)
	return p
}

func (n *Node) shortTaken(short, exceptName string) bool {
	for _, other := range n.options.list() {
		if other.Name() != exceptName && other.Short() == short {
			return true
		}
	}
	return false
}

// Option declares a flag carrying a value, e.g. "--name VALUE".
func (n *Node) Option(name, description string, attrs ...param.Attr) *Node {
	n.DefineParameter(param.Option, name, description, attrs...)
	return n
}

// NullableOption declares a flag that may carry a value, and is true when given without one.
func (n *Node) NullableOption(name, description string, attrs ...param.Attr) *Node {
	n.DefineParameter(param.NullableOption, name, description, attrs...)
	return n
}

// Switch declares a boolean flag.
func (n *Node) Switch(name, description string, attrs ...param.Attr) *Node {
	n.DefineParameter(param.Switch, name, description, attrs...)
	return n
}

// NegatableSwitch declares a boolean flag that may also be given as "--no-name".
func (n *Node) NegatableSwitch(name, description string, attrs ...param.Attr) *Node {
	n.DefineParameter(param.NegatableSwitch, name, description, attrs...)
	return n
}

// Argument declares a positional parameter.
// Arguments are bound in declaration order, and a multiple argument takes every remaining token.
func (n *Node) Argument(name, description string, attrs ...param.Attr) *Node {
	n.DefineParameter(param.Argument, name, description, attrs...)
	return n
}

// Options returns the declared flags in declaration order.
func (n *Node) Options() []*param.Parameter {
	return n.options.list()
}

// Arguments returns the declared positional parameters in declaration order.
func (n *Node) Arguments() []*param.Parameter {
	return n.arguments.list()
}

func (n *Node) LookupOption(name string) (*param.Parameter, bool) {
	return n.options.get(name)
}

func (n *Node) LookupArgument(name string) (*param.Parameter, bool) {
	return n.arguments.get(name)
}

// RemoveParameter removes an option, or an argument if there's no option with that name.
// An error wrapping [ErrMissingParameter] is returned if neither exist.
func (n *Node) RemoveParameter(name string) error {
	if n.options.remove(name) {
		if name == helpName {
			n.autoHelp = false
			n.autoHelpAdded = false
		}
		return nil
	}
	if n.arguments.remove(name) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingParameter, name)
}

// Command declares a sub-command and applies the configs to it.
// If the sub-command already exists, then the configs are applied to the existing command instead.
func (n *Node) Command(name string, configs ...Configure) *Node {
	key := cleanseKey(name)
	if len(key) == 0 {
		panic(n.definitionErr("empty command name"))
	}
	child, ok := n.commands.commands[key]
	if !ok {
		child = newNode(n.app, n, key)
		n.commands.Declare(key, child)
	}
	child.configure(configs)
	return child
}

// Alias adds alternative names this command may be selected with.
func (n *Node) Alias(aliases ...string) *Node {
	if n.parent == nil {
		panic(n.definitionErr("aliases given for the root command"))
	}
	if err := n.parent.commands.Alias(n.name, aliases...); err != nil {
		panic(n.definitionErr("%v", err))
	}
	return n
}

// RemoveCommand detaches a sub-command.
// An error wrapping [ErrMissingCommand] is returned if there's no such sub-command.
func (n *Node) RemoveCommand(name string) error {
	_, err := n.commands.Remove(name)
	return err
}

// Alter applies more configuration to an existing node.
func (n *Node) Alter(configs ...Configure) *Node {
	n.configure(configs)
	return n
}

// Commands returns the sub-commands of this node.
func (n *Node) Commands() *CommandSet {
	return &n.commands
}

// Subcommand looks up a sub-command by name or alias.
func (n *Node) Subcommand(name string) (*Node, bool) {
	return n.commands.Get(name)
}

func (n *Node) HasCommand(name string) bool {
	return n.commands.Has(name)
}

func (n *Node) HasCommands() bool {
	return n.commands.Len() > 0
}

// ListCommands returns sub-command names in declaration order.
func (n *Node) ListCommands() []string {
	return n.commands.List()
}

// HelpCommand declares a "help" sub-command.
// By default, it shows help for this node, or for the sub-command named by its optional argument.
// Passing configs replaces the default behavior.
func (n *Node) HelpCommand(configs ...Configure) *Node {
	if len(configs) > 0 {
		return n.Command(helpName, configs...)
	}
	return n.Command(helpName, func(h *Node) {
		h.SetSummary("List all commands or help for one command")
		h.Argument("command", "Command to help for",
			param.OfType("symbol"),
			param.Optional(),
			param.Assure(func(v any) bool {
				return n.HasCommand(fmt.Sprint(v))
			}),
		)
		h.Action(func(inv *Invocation) error {
			target := n
			if name, ok := Get[param.Symbol](inv.Args, "command"); ok {
				target, _ = n.Subcommand(string(name))
			}
			return target.ShowHelp()
		})
	})
}

// Action sets the function executed when this node is dispatched.
func (n *Node) Action(fn ActionFunc) *Node {
	if fn == nil {
		panic(n.definitionErr("nil action"))
	}
	n.action = fn
	n.actionName = ""
	return n
}

// ActionNamed binds the action to a handler registered with [Node.Handle] on this node or any of its parents.
// The handler is resolved when the application is created.
func (n *Node) ActionNamed(name string) *Node {
	if len(name) == 0 {
		panic(n.definitionErr("empty action name"))
	}
	n.actionName = name
	n.action = nil
	return n
}

// Handle registers a named handler that this node, or any of its sub-commands, may bind with [Node.ActionNamed].
func (n *Node) Handle(name string, fn ActionFunc) *Node {
	if fn == nil {
		panic(n.definitionErr("nil handler %q", name))
	}
	if n.handlers == nil {
		n.handlers = map[string]ActionFunc{}
	}
	n.handlers[name] = fn
	return n
}

// resolveAction finds the action to run.
// Nodes without an action do nothing when they have sub-commands, and fail with [ErrNoAction] otherwise.
func (n *Node) resolveAction() (ActionFunc, error) {
	if n.action != nil {
		return n.action, nil
	}
	if len(n.actionName) > 0 {
		for cur := n; cur != nil; cur = cur.parent {
			if handler, ok := cur.handlers[n.actionName]; ok {
				return handler, nil
			}
		}
		return nil, n.definitionErr("action handler %q is missing", n.actionName)
	}
	if n.HasCommands() {
		return func(*Invocation) error { return nil }, nil
	}
	path := n.Path()
	return func(*Invocation) error {
		return fmt.Errorf("%w for %s", ErrNoAction, path)
	}, nil
}

// verify checks that every action in the tree can be resolved.
func (n *Node) verify() error {
	if _, err := n.resolveAction(); err != nil {
		return err
	}
	for _, key := range n.commands.List() {
		child, _ := n.commands.Get(key)
		if err := child.verify(); err != nil {
			return err
		}
	}
	return nil
}

// Root returns the top-most node of the tree.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Result returns the result of the last parse, or nil if there hasn't been one since the last [Node.Reset].
func (n *Node) Result() *Result {
	return n.result
}

// Reset restores every parameter in this node and its sub-commands to its default, and clears parse results.
// This allows running the same tree many times in one process.
func (n *Node) Reset() {
	for _, p := range n.options.list() {
		p.Reset()
	}
	for _, p := range n.arguments.list() {
		p.Reset()
	}
	n.result = nil
	for _, key := range n.commands.List() {
		child, _ := n.commands.Get(key)
		child.Reset()
	}
}

// paramSet keeps parameters in declaration order.
// Replacing a parameter keeps its original position.
type paramSet struct {
	names  []string
	params map[string]*param.Parameter
}

func (s *paramSet) put(p *param.Parameter) {
	if s.params == nil {
		s.params = map[string]*param.Parameter{}
	}
	if _, ok := s.params[p.Name()]; !ok {
		s.names = append(s.names, p.Name())
	}
	s.params[p.Name()] = p
}

func (s *paramSet) get(name string) (*param.Parameter, bool) {
	p, ok := s.params[name]
	return p, ok
}

func (s *paramSet) has(name string) bool {
	_, ok := s.params[name]
	return ok
}

func (s *paramSet) remove(name string) bool {
	if _, ok := s.params[name]; !ok {
		return false
	}
	delete(s.params, name)
	s.names = slices.DeleteFunc(s.names, func(n string) bool { return n == name })
	return true
}

func (s *paramSet) list() []*param.Parameter {
	out := make([]*param.Parameter, len(s.names))
	for i, name := range s.names {
		out[i] = s.params[name]
	}
	return out
}
