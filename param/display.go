package param

import (
	"github.com/saylorsolutions/clitree/textcase"
	"strconv"
	"strings"
)

// FlagName is the long flag name without leading dashes, with underscores translated to hyphens.
func (p *Parameter) FlagName() string {
	name := p.long
	if len(name) == 0 {
		name = p.name
	}
	return textcase.Kebab(name)
}

// LongSpec renders the long form of a flag parameter as shown in usage.
//
//	--delimiter DELIMITER
//	--level [LEVEL]
//	--verbose
//	--[no-]color
func (p *Parameter) LongSpec() string {
	switch p.kind {
	case Argument:
		return p.displayName
	case NullableOption:
		return "--" + p.FlagName() + " [" + p.displayName + "]"
	case Switch:
		return "--" + p.FlagName()
	case NegatableSwitch:
		return "--[no-]" + p.FlagName()
	default:
		return "--" + p.FlagName() + " " + p.displayName
	}
}

// ShortSpec renders the short alias, or an empty string if there isn't one.
func (p *Parameter) ShortSpec() string {
	if len(p.short) == 0 {
		return ""
	}
	return "-" + p.short
}

// Spec combines the short and long forms, e.g. "-d, --delimiter DELIMITER".
func (p *Parameter) Spec() string {
	if short := p.ShortSpec(); len(short) > 0 {
		return short + ", " + p.LongSpec()
	}
	return p.LongSpec()
}

// DefaultString renders the default as it would be typed on the command line.
// An empty string is returned when there is nothing useful to show.
func (p *Parameter) DefaultString() string {
	switch p.kind {
	case Argument:
		return ""
	case Switch:
		if p.def == true {
			return "--" + p.FlagName()
		}
		return ""
	case NegatableSwitch:
		if p.def == true {
			return "--" + p.FlagName()
		}
		return "--no-" + p.FlagName()
	}
	if !p.HasDefault() {
		return ""
	}
	elems := p.elements(p.def)
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = stringForm(e)
	}
	return "--" + p.FlagName() + " " + strconv.Quote(strings.Join(parts, ","))
}
