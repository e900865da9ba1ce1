package param

// Attr configures a [Parameter] at definition time.
type Attr func(c *config)

type config struct {
	typeName  string
	required  *bool
	multiple  bool
	def       any
	match     any
	hasMatch  bool
	domain    Domain
	hasDomain bool
	assure    Assurance
	hasAssure bool
	transform Transform
	short     string
	long      string
}

// OfType sets the value type by name, see [ParseType] for accepted names.
// Switches ignore this and are always boolean.
func OfType(name string) Attr {
	return func(c *config) {
		c.typeName = name
	}
}

// Required overrides whether a value must be present.
// Arguments are required by default, everything else is optional.
func Required(required bool) Attr {
	return func(c *config) {
		c.required = &required
	}
}

// Optional is shorthand for Required(false).
func Optional() Attr {
	return Required(false)
}

// Multiple makes the parameter accumulate an ordered sequence of values.
func Multiple() Attr {
	return func(c *config) {
		c.multiple = true
	}
}

// Default sets the value used when none is given.
// The value must already be of the declared type, or a slice of it for multiple parameters.
func Default(v any) Attr {
	return func(c *config) {
		c.def = v
	}
}

// Matching requires the string form of each value to match the pattern.
// The pattern may be a regular expression string, a [*regexp.Regexp], or any [Matcher].
func Matching(pattern any) Attr {
	return func(c *config) {
		c.match = pattern
		c.hasMatch = true
	}
}

// Within requires each value to be contained in the domain.
func Within(domain Domain) Attr {
	return func(c *config) {
		c.domain = domain
		c.hasDomain = true
	}
}

// WithinValues is shorthand for Within(OneOf(vals...)).
func WithinValues(vals ...any) Attr {
	return Within(OneOf(vals...))
}

// Assure adds a custom validation predicate.
func Assure(fn Assurance) Attr {
	return func(c *config) {
		c.assure = fn
		c.hasAssure = true
	}
}

// WithTransform sets a function applied to the cast value before validation.
func WithTransform(fn Transform) Attr {
	return func(c *config) {
		c.transform = fn
	}
}

// Short sets a single character alias for a flag parameter.
func Short(short string) Attr {
	return func(c *config) {
		c.short = short
	}
}

// Long customizes the long flag name. Underscores are translated to hyphens.
func Long(long string) Attr {
	return func(c *config) {
		c.long = long
	}
}
