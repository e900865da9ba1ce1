package cli

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var keyCleansePattern = regexp.MustCompile(`\s`)

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

// CommandSet is the ordered group of sub-commands owned by a [Node].
// Keys are cleansed to remove spaces, and normalized to lower-case, so look ups are case-insensitive.
// Aliases may be added as a way to support shorter variants of the same command.
type CommandSet struct {
	keys     []string
	commands map[string]*Node
	aliases  map[string]string
}

// Declare adds a command, replacing any command already declared with the same key.
// A replaced command keeps its position, and its aliases.
func (s *CommandSet) Declare(key string, node *Node) {
	key = cleanseKey(key)
	if s.commands == nil {
		s.commands = map[string]*Node{}
	}
	if _, ok := s.commands[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.commands[key] = node
}

// Alias registers alternative keys for an existing command.
func (s *CommandSet) Alias(key string, aliases ...string) error {
	key = cleanseKey(key)
	if _, ok := s.commands[key]; !ok {
		return fmt.Errorf("%w: %s", ErrMissingCommand, key)
	}
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		if _, ok := s.commands[alias]; ok {
			return fmt.Errorf("alias %s is already a command", alias)
		}
		if target, ok := s.aliases[alias]; ok && target != key {
			return fmt.Errorf("alias %s is already used by %s", alias, target)
		}
		if s.aliases == nil {
			s.aliases = map[string]string{}
		}
		s.aliases[alias] = key
	}
	return nil
}

// Resolve returns the canonical key for a key or alias, and whether it was found.
func (s *CommandSet) Resolve(key string) (string, bool) {
	key = cleanseKey(key)
	if _, ok := s.commands[key]; ok {
		return key, true
	}
	target, ok := s.aliases[key]
	return target, ok
}

// Get looks up a command by key or alias.
func (s *CommandSet) Get(key string) (*Node, bool) {
	resolved, ok := s.Resolve(key)
	if !ok {
		return nil, false
	}
	return s.commands[resolved], true
}

func (s *CommandSet) Has(key string) bool {
	_, ok := s.Resolve(key)
	return ok
}

// List returns command keys in declaration order.
func (s *CommandSet) List() []string {
	return slices.Clone(s.keys)
}

// Aliases returns the sorted aliases of a command.
func (s *CommandSet) Aliases(key string) []string {
	key = cleanseKey(key)
	var aliases []string
	for alias, target := range s.aliases {
		if target == key {
			aliases = append(aliases, alias)
		}
	}
	slices.Sort(aliases)
	return aliases
}

func (s *CommandSet) Len() int {
	return len(s.keys)
}

// Remove detaches a command and its aliases.
// An error wrapping [ErrMissingCommand] is returned if there is no such command.
func (s *CommandSet) Remove(key string) (*Node, error) {
	resolved, ok := s.Resolve(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingCommand, cleanseKey(key))
	}
	key = resolved
	node := s.commands[key]
	delete(s.commands, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
	for alias, target := range s.aliases {
		if target == key {
			delete(s.aliases, alias)
		}
	}
	return node, nil
}

// names returns every key and alias, for suggestions.
func (s *CommandSet) names() []string {
	names := slices.Clone(s.keys)
	for alias := range s.aliases {
		names = append(names, alias)
	}
	return names
}
