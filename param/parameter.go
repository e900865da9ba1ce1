package param

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Parameter is a typed, named value bound from the command line.
//
// Configuration is immutable after [New] returns.
// The bound value changes with [Parameter.Assign] and [Parameter.Reset], so the same Parameter can be reused across many parses.
type Parameter struct {
	name        string
	displayName string
	description string
	kind        Kind
	typ         Type
	required    bool
	multiple    bool
	def         any
	matcher     Matcher
	domain      Domain
	assure      Assurance
	transform   Transform
	short       string
	long        string
	value       any
}

// New creates and verifies a [Parameter].
// Any problem with the given attributes is returned as a [DefinitionError].
func New(kind Kind, name, description string, attrs ...Attr) (*Parameter, error) {
	p := &Parameter{
		name:        name,
		displayName: strings.ToUpper(name),
		description: description,
		kind:        kind,
	}
	if len(strings.TrimSpace(name)) == 0 {
		return nil, p.definitionErr("missing name")
	}
	var cfg config
	for _, attr := range attrs {
		if attr != nil {
			attr(&cfg)
		}
	}
	if err := p.configure(cfg); err != nil {
		return nil, err
	}
	p.Reset()
	return p, nil
}

// MustNew is like [New], but panics with the [DefinitionError].
func MustNew(kind Kind, name, description string, attrs ...Attr) *Parameter {
	p, err := New(kind, name, description, attrs...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Parameter) definitionErr(format string, args ...any) error {
	return &DefinitionError{Kind: p.kind, DisplayName: p.displayName, Reason: fmt.Sprintf(format, args...)}
}

func (p *Parameter) configure(cfg config) error {
	p.required = p.kind == Argument
	if cfg.required != nil {
		p.required = *cfg.required
	}
	p.multiple = cfg.multiple
	p.typ = TypeString
	if len(cfg.typeName) > 0 {
		typ, err := ParseType(cfg.typeName)
		if err != nil {
			return p.definitionErr("NOT castable type %q", cfg.typeName)
		}
		p.typ = typ
	}
	if p.kind.IsSwitch() {
		p.typ = TypeBool
		p.multiple = false
	}
	p.transform = cfg.transform
	p.long = cfg.long

	if len(cfg.short) > 0 {
		if p.kind == Argument {
			return p.definitionErr("short flag %q given", cfg.short)
		}
		if len(cfg.short) != 1 || !isFlagChar(cfg.short[0]) {
			return p.definitionErr("short flag %q must be a single letter or digit", cfg.short)
		}
		p.short = cfg.short
	}
	if cfg.hasMatch {
		matcher, err := toMatcher(cfg.match)
		if err != nil {
			return p.definitionErr("matching pattern %v", err)
		}
		p.matcher = matcher
	}
	if cfg.hasDomain {
		if isNil(cfg.domain) {
			return p.definitionErr("possible values must be a non-nil domain")
		}
		p.domain = cfg.domain
	}
	if cfg.hasAssure {
		if cfg.assure == nil {
			return p.definitionErr("assurance must be a non-nil function")
		}
		p.assure = cfg.assure
	}
	if cfg.def != nil {
		return p.configureDefault(cfg.def)
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func isFlagChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func toMatcher(pattern any) (Matcher, error) {
	switch val := pattern.(type) {
	case nil:
		return nil, fmt.Errorf("must not be nil")
	case string:
		re, err := regexp.Compile(val)
		if err != nil {
			return nil, fmt.Errorf("does not compile: %w", err)
		}
		return re, nil
	case *regexp.Regexp:
		if val == nil {
			return nil, fmt.Errorf("must not be nil")
		}
		return val, nil
	case Matcher:
		return val, nil
	default:
		return nil, fmt.Errorf("of type %T must be a regular expression or implement MatchString", pattern)
	}
}

func (p *Parameter) configureDefault(def any) error {
	if p.multiple {
		elems, ok := toSlice(def)
		if !ok {
			return p.definitionErr("default value must be a slice of %s values", p.typ)
		}
		for _, e := range elems {
			if !p.typ.Is(e) {
				return p.definitionErr("default value must be a slice of %s values", p.typ)
			}
		}
		def = elems
	} else if !p.typ.Is(def) {
		return p.definitionErr("default value must be a %s value", p.typ)
	}
	if !p.Valid(def) {
		return p.definitionErr("invalid default value %s", inspect(def))
	}
	p.def = def
	return nil
}

// toSlice converts any slice or array into a fresh []any.
func toSlice(v any) ([]any, bool) {
	if elems, ok := v.([]any); ok {
		return append([]any{}, elems...), true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

func (p *Parameter) Name() string {
	return p.name
}

// DisplayName is the upper-case name shown in usage and error messages.
func (p *Parameter) DisplayName() string {
	return p.displayName
}

func (p *Parameter) Description() string {
	return p.description
}

func (p *Parameter) Kind() Kind {
	return p.kind
}

func (p *Parameter) Type() Type {
	return p.typ
}

func (p *Parameter) Required() bool {
	return p.required
}

func (p *Parameter) Multiple() bool {
	return p.multiple
}

func (p *Parameter) HasDefault() bool {
	return p.def != nil
}

// Default returns a copy of the default value, or nil if there isn't one.
func (p *Parameter) Default() any {
	if elems, ok := p.def.([]any); ok {
		return append([]any{}, elems...)
	}
	return p.def
}

// Short returns the single character flag alias, if any.
func (p *Parameter) Short() string {
	return p.short
}

// Domain returns the configured domain, if any.
func (p *Parameter) Domain() Domain {
	return p.domain
}

// Value returns the currently bound value. Nil means unset.
func (p *Parameter) Value() any {
	return p.value
}

// Reset restores the value to the default, or unset if there is no default.
func (p *Parameter) Reset() {
	p.value = p.Default()
}

// Missing reports whether a required value is absent.
func (p *Parameter) Missing() bool {
	return p.required && p.value == nil
}

// Assign casts, transforms, and validates raw before binding it as the new value.
// A nil raw value falls back to the default.
// The current value is left untouched if an error is returned.
func (p *Parameter) Assign(raw any) error {
	val, err := p.process(raw)
	if err != nil {
		return err
	}
	if err := p.Validate(val); err != nil {
		return err
	}
	if p.kind == NullableOption && val == nil {
		val = true
	}
	p.value = val
	return nil
}

func (p *Parameter) process(raw any) (any, error) {
	if raw == nil {
		raw = p.Default()
	}
	val, err := p.cast(raw)
	if err != nil {
		return nil, err
	}
	if p.transform != nil {
		val = p.transform(val)
	}
	return val, nil
}

func (p *Parameter) cast(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if !p.multiple {
		return p.castValue(raw)
	}
	elems, ok := toSlice(raw)
	if !ok {
		elems = []any{raw}
	}
	for i, e := range elems {
		v, err := p.castValue(e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return elems, nil
}

func (p *Parameter) castValue(v any) (any, error) {
	cast, err := p.typ.Cast(v)
	if err != nil {
		return nil, &CastError{Kind: p.kind, DisplayName: p.displayName, Type: p.typ, Value: v, Err: err}
	}
	return cast, nil
}

// Validate returns a [ValueError] if v is not [Parameter.Valid].
func (p *Parameter) Validate(v any) error {
	if !p.Valid(v) {
		return &ValueError{Kind: p.kind, DisplayName: p.displayName, Value: v}
	}
	return nil
}

// Valid reports whether every element of v is present when required, matches the matcher, is within the domain, and satisfies the assurance.
// Absent elements of optional parameters are always valid.
func (p *Parameter) Valid(v any) bool {
	for _, e := range p.elements(v) {
		if e == nil {
			if p.required {
				return false
			}
			continue
		}
		if p.matcher != nil && !p.matcher.MatchString(stringForm(e)) {
			return false
		}
		if p.domain != nil && !p.domain.Contains(e) {
			return false
		}
		if p.assure != nil && !p.assure(e) {
			return false
		}
	}
	return true
}

func (p *Parameter) elements(v any) []any {
	if !p.multiple || v == nil {
		return []any{v}
	}
	if elems, ok := toSlice(v); ok {
		return elems
	}
	return []any{v}
}

func stringForm(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case Symbol:
		return string(val)
	default:
		return fmt.Sprint(v)
	}
}
