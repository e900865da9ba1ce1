package param

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// Matcher checks the string form of a value, and is satisfied by [*regexp.Regexp].
type Matcher interface {
	MatchString(s string) bool
}

// Domain is a container of acceptable values.
type Domain interface {
	Contains(v any) bool
}

// Assurance is a custom validation predicate over a cast value.
type Assurance func(v any) bool

// Transform is applied to a cast value before validation.
type Transform func(v any) any

// ValueSet is a finite [Domain] that remembers the order its members were given in.
type ValueSet struct {
	members map[any]struct{}
	order   []any
}

// OneOf creates a finite [Domain] from the given values.
// Values must be comparable.
func OneOf(vals ...any) *ValueSet {
	s := &ValueSet{members: map[any]struct{}{}}
	for _, v := range vals {
		if !isComparable(v) {
			continue
		}
		if _, ok := s.members[v]; ok {
			continue
		}
		s.members[v] = struct{}{}
		s.order = append(s.order, v)
	}
	return s
}

func isComparable(v any) bool {
	return v != nil && reflect.TypeOf(v).Comparable()
}

func (s *ValueSet) Contains(v any) bool {
	if !isComparable(v) {
		return false
	}
	_, ok := s.members[v]
	return ok
}

// Members returns the set's values in declaration order.
func (s *ValueSet) Members() []any {
	return append([]any(nil), s.order...)
}

func (s *ValueSet) String() string {
	parts := make([]string, len(s.order))
	for i, v := range s.order {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

// Range is an inclusive interval [Domain].
type Range[T cmp.Ordered] struct {
	Min, Max T
}

// Between creates an inclusive [Range] from lo to hi.
func Between[T cmp.Ordered](lo, hi T) Range[T] {
	return Range[T]{Min: lo, Max: hi}
}

func (r Range[T]) Contains(v any) bool {
	val, ok := v.(T)
	if !ok {
		return false
	}
	return val >= r.Min && val <= r.Max
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%v..%v", r.Min, r.Max)
}
