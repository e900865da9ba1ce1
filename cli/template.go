package cli

import (
	"github.com/saylorsolutions/clitree/textcase"
	"slices"
	"sync"
)

// Template is a reusable list of [Configure] functions.
// Templates are values, so a derived template made with [Template.Extend] never changes the template it came from.
type Template []Configure

// Extend returns a copy of the template with more configuration applied after it.
func (t Template) Extend(configs ...Configure) Template {
	return slices.Concat(t, configs)
}

// Apply configures n with each function in order.
func (t Template) Apply(n *Node) {
	for _, config := range t {
		if config != nil {
			config(n)
		}
	}
}

// Bundle is a named, importable command definition.
type Bundle struct {
	Name     string // Name is converted to snake case to name the imported command, so "NumberTools" becomes "number_tools".
	Template Template
}

var (
	bundleMux sync.Mutex
	bundles   = map[string][]Bundle{}
)

// RegisterBundles adds bundles to a named group, so they can be imported with [Node.UseCommands].
// Groups are matched by their camel case form, so "app_tools" and "AppTools" are the same group.
// This is intended to be called from init functions.
func RegisterBundles(group string, bundle ...Bundle) {
	key := textcase.Camel(group)
	bundleMux.Lock()
	defer bundleMux.Unlock()
	bundles[key] = append(bundles[key], bundle...)
}

func registeredBundles(group string) ([]Bundle, bool) {
	bundleMux.Lock()
	defer bundleMux.Unlock()
	found, ok := bundles[textcase.Camel(group)]
	return slices.Clone(found), ok
}

// Import declares a sub-command for each bundle, named by the snake case form of the bundle name.
func (n *Node) Import(bundles ...Bundle) *Node {
	for _, b := range bundles {
		n.ImportAs(textcase.Snake(b.Name), b)
	}
	return n
}

// ImportAs declares a sub-command from a bundle with an explicit name.
// Additional configs are applied after the bundle's template.
func (n *Node) ImportAs(name string, b Bundle, configs ...Configure) *Node {
	n.Command(name, b.Template.Extend(configs...)...)
	return n
}

// UseCommands imports every bundle registered to a group with [RegisterBundles].
// The configs are applied to each imported command after its template.
func (n *Node) UseCommands(group string, configs ...Configure) *Node {
	found, ok := registeredBundles(group)
	if !ok {
		panic(n.definitionErr("no command bundles registered for %q", group))
	}
	for _, b := range found {
		n.ImportAs(textcase.Snake(b.Name), b, configs...)
	}
	return n
}
