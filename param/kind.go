package param

// Kind determines how a [Parameter] is presented on the command line.
type Kind int

const (
	Argument        Kind = iota // Argument is bound by position.
	Option                      // Option is introduced by a flag and carries a value.
	NullableOption              // NullableOption may be given with or without a value, and is true when the value is left off.
	Switch                      // Switch is a boolean flag without a value token.
	NegatableSwitch             // NegatableSwitch is a Switch that also accepts a "--no-" prefixed form.
)

func (k Kind) String() string {
	switch k {
	case Argument:
		return "argument"
	case Option:
		return "option"
	case NullableOption:
		return "nullable option"
	case Switch:
		return "switch"
	case NegatableSwitch:
		return "negatable switch"
	default:
		return "parameter"
	}
}

// IsFlag reports whether parameters of this kind are bound by flag rather than position.
func (k Kind) IsFlag() bool {
	return k != Argument
}

// IsSwitch reports whether this kind is a boolean switch.
func (k Kind) IsSwitch() bool {
	return k == Switch || k == NegatableSwitch
}
