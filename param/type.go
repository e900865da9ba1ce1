package param

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Type is the value type of a [Parameter].
type Type int

const (
	TypeString Type = iota
	TypeInteger
	TypeFloat
	TypeSymbol
	TypeTime
	TypeDate
	TypeDateTime
	TypeBool
)

var (
	typeNames = map[Type]string{
		TypeString:   "string",
		TypeInteger:  "integer",
		TypeFloat:    "float",
		TypeSymbol:   "symbol",
		TypeTime:     "time",
		TypeDate:     "date",
		TypeDateTime: "datetime",
		TypeBool:     "bool",
	}
	typeAliases = map[string]Type{
		"string":    TypeString,
		"str":       TypeString,
		"integer":   TypeInteger,
		"int":       TypeInteger,
		"float":     TypeFloat,
		"double":    TypeFloat,
		"symbol":    TypeSymbol,
		"sym":       TypeSymbol,
		"atom":      TypeSymbol,
		"time":      TypeTime,
		"date":      TypeDate,
		"datetime":  TypeDateTime,
		"date_time": TypeDateTime,
		"bool":      TypeBool,
		"boolean":   TypeBool,
	}
)

// ParseType resolves a type name case-insensitively, accepting common aliases like "int" and "boolean".
func ParseType(name string) (Type, error) {
	t, ok := typeAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown type %q", name)
	}
	return t, nil
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Symbol is an interned-style identifier value, distinct from a free-form string.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight of the date in the local time zone.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateTime is a point in time declared with the datetime type.
type DateTime struct {
	time.Time
}

// BoolValues maps the accepted boolean words to their values.
// Anything else casts to false.
var BoolValues = map[string]bool{
	"true":  true,
	"yes":   true,
	"false": false,
	"no":    false,
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.RubyDate,
	time.UnixDate,
	time.ANSIC,
	"Jan 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no known date layout matches %q", s)
}

// Is reports whether v is already a value of this type.
func (t Type) Is(v any) bool {
	var ok bool
	switch t {
	case TypeString:
		_, ok = v.(string)
	case TypeInteger:
		_, ok = v.(int)
	case TypeFloat:
		_, ok = v.(float64)
	case TypeSymbol:
		_, ok = v.(Symbol)
	case TypeTime:
		_, ok = v.(time.Time)
	case TypeDate:
		_, ok = v.(Date)
	case TypeDateTime:
		_, ok = v.(DateTime)
	case TypeBool:
		_, ok = v.(bool)
	}
	return ok
}

// Cast coerces v to this type.
// Values that are already of the type are returned unchanged.
func (t Type) Cast(v any) (any, error) {
	if t.Is(v) {
		return v, nil
	}
	switch t {
	case TypeString:
		return fmt.Sprint(v), nil
	case TypeInteger:
		return castInteger(v)
	case TypeFloat:
		return castFloat(v)
	case TypeSymbol:
		switch val := v.(type) {
		case string:
			return Symbol(val), nil
		case fmt.Stringer:
			return Symbol(val.String()), nil
		}
	case TypeTime:
		switch val := v.(type) {
		case string:
			return parseTime(val)
		case Date:
			return val.Time(), nil
		case DateTime:
			return val.Time, nil
		}
	case TypeDate:
		switch val := v.(type) {
		case string:
			parsed, err := parseTime(val)
			if err != nil {
				return nil, err
			}
			return DateOf(parsed), nil
		case time.Time:
			return DateOf(val), nil
		case DateTime:
			return DateOf(val.Time), nil
		}
	case TypeDateTime:
		switch val := v.(type) {
		case string:
			parsed, err := parseTime(val)
			if err != nil {
				return nil, err
			}
			return DateTime{parsed}, nil
		case time.Time:
			return DateTime{val}, nil
		case Date:
			return DateTime{val.Time()}, nil
		}
	case TypeBool:
		return BoolValues[strings.ToLower(fmt.Sprint(v))], nil
	}
	return nil, fmt.Errorf("cannot convert %T to %s", v, t)
}

func castInteger(v any) (any, error) {
	switch val := v.(type) {
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(val), 0, 64)
		if err != nil {
			return nil, err
		}
		return int(i), nil
	case int8:
		return int(val), nil
	case int16:
		return int(val), nil
	case int32:
		return int(val), nil
	case int64:
		return int(val), nil
	case uint8:
		return int(val), nil
	case uint16:
		return int(val), nil
	case uint32:
		return int(val), nil
	case float32:
		return int(val), nil
	case float64:
		return int(val), nil
	}
	return nil, fmt.Errorf("cannot convert %T to integer", v)
}

func castFloat(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return strconv.ParseFloat(strings.TrimSpace(val), 64)
	case int:
		return float64(val), nil
	case int32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case float32:
		return float64(val), nil
	}
	return nil, fmt.Errorf("cannot convert %T to float", v)
}
