package param

import (
	"errors"
	"fmt"
)

var (
	ErrDefinition   = errors.New("invalid parameter definition")
	ErrTypeCasting  = errors.New("type casting failed")
	ErrInvalidValue = errors.New("invalid parameter value")
)

// DefinitionError reports a mistake in how a [Parameter] was declared.
type DefinitionError struct {
	Kind        Kind
	DisplayName string
	Reason      string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s for %s %s", e.Reason, e.Kind, e.DisplayName)
}

func (e *DefinitionError) Is(target error) bool {
	return target == ErrDefinition
}

// CastError reports a value that could not be converted to the declared [Type].
type CastError struct {
	Kind        Kind
	DisplayName string
	Type        Type
	Value       any
	Err         error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("Type casting to %s for %s %s failed: %v", e.Type, e.Kind, e.DisplayName, e.Err)
}

func (e *CastError) Is(target error) bool {
	return target == ErrTypeCasting
}

func (e *CastError) Unwrap() error {
	return e.Err
}

// Tag is the short classification shown next to the message.
func (e *CastError) Tag() string {
	return "TypeCastingFailed"
}

// ValueError reports a value that failed validation.
type ValueError struct {
	Kind        Kind
	DisplayName string
	Value       any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("Invalid value of %s %s: %s", e.Kind, e.DisplayName, inspect(e.Value))
}

func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func (e *ValueError) Tag() string {
	return "InvalidArgumentValue"
}

func inspect(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", val)
	case []any:
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprint(val)
	}
}
