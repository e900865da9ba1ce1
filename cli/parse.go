package cli

import (
	"errors"
	"github.com/saylorsolutions/clitree/param"
	flag "github.com/spf13/pflag"
	"io"
	"slices"
	"strconv"
	"strings"
)

// nullValue is given by the scanner when a nullable option has no value.
const nullValue = "\x00null"

// rawValue records the strings given for a flag, so they can be cast and validated after scanning.
type rawValue struct {
	multiple bool
	given    bool
	null     bool
	vals     []string
}

func (r *rawValue) String() string {
	return strings.Join(r.vals, ",")
}

func (r *rawValue) Set(s string) error {
	r.given = true
	if s == nullValue {
		r.null = true
		return nil
	}
	r.null = false
	if r.multiple {
		r.vals = append(r.vals, strings.Split(s, ",")...)
		return nil
	}
	r.vals = []string{s}
	return nil
}

func (r *rawValue) Type() string {
	return "string"
}

func (r *rawValue) raw() any {
	if r.null || len(r.vals) == 0 {
		return nil
	}
	if r.multiple {
		out := make([]any, len(r.vals))
		for i, v := range r.vals {
			out[i] = v
		}
		return out
	}
	return r.vals[0]
}

// negatedValue records the inverse of a boolean into the switch it negates.
type negatedValue struct {
	target *rawValue
}

func (n *negatedValue) String() string {
	return ""
}

func (n *negatedValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	return n.target.Set(strconv.FormatBool(!b))
}

func (n *negatedValue) Type() string {
	return "bool"
}

// flagShape describes how a flag consumes tokens.
type flagShape int

const (
	shapeValue flagShape = iota
	shapeNullable
	shapeBool
)

type scanner struct {
	fs      *flag.FlagSet
	raws    map[string]*rawValue
	longs   map[string]flagShape
	shorts  map[byte]flagShape
	ordered bool
}

func (n *Node) newScanner() *scanner {
	s := &scanner{
		fs:      flag.NewFlagSet(n.Path(), flag.ContinueOnError),
		raws:    map[string]*rawValue{},
		longs:   map[string]flagShape{},
		shorts:  map[byte]flagShape{},
		ordered: n.HasCommands(),
	}
	s.fs.SetOutput(io.Discard)
	s.fs.Usage = func() {}
	s.fs.SetInterspersed(!s.ordered)
	for _, p := range n.options.list() {
		raw := &rawValue{multiple: p.Multiple()}
		s.raws[p.Name()] = raw
		f := s.fs.VarPF(raw, p.FlagName(), p.Short(), p.Description())
		shape := shapeValue
		switch p.Kind() {
		case param.Switch, param.NegatableSwitch:
			f.NoOptDefVal = "true"
			shape = shapeBool
		case param.NullableOption:
			f.NoOptDefVal = nullValue
			shape = shapeNullable
		}
		s.longs[p.FlagName()] = shape
		if len(p.Short()) > 0 {
			s.shorts[p.Short()[0]] = shape
		}
		if p.Kind() == param.NegatableSwitch {
			neg := s.fs.VarPF(&negatedValue{target: raw}, "no-"+p.FlagName(), "", "")
			neg.NoOptDefVal = "true"
			neg.Hidden = true
			s.longs["no-"+p.FlagName()] = shapeBool
		}
	}
	return s
}

// attachNullable joins a nullable option with the value token that follows it, since the scanner only accepts "--name=value" for optional values.
// Tokens are walked the same way the scanner will, so values of other options and anything after the sub-command are left alone.
func (s *scanner) attachNullable(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "--" {
			return append(out, tokens[i:]...)
		}
		if !isFlagToken(tok) {
			if s.ordered {
				return append(out, tokens[i:]...)
			}
			out = append(out, tok)
			continue
		}
		var (
			shape flagShape
			known bool
		)
		if strings.HasPrefix(tok, "--") {
			shape, known = s.longs[tok[2:]]
		} else {
			tok, shape, known = s.shortShape(tok)
		}
		out = append(out, tok)
		if !known || strings.Contains(tok, "=") || i+1 >= len(tokens) {
			continue
		}
		switch next := tokens[i+1]; shape {
		case shapeValue:
			out = append(out, next)
			i++
		case shapeNullable:
			if !isFlagToken(next) {
				out[len(out)-1] = tok + "=" + next
				i++
			}
		}
	}
	return out
}

func isFlagToken(tok string) bool {
	return strings.HasPrefix(tok, "-") && tok != "-"
}

// shortShape finds the shape of the last flag in a group of short flags like "-vd".
// A nullable flag followed by more characters takes them as its value, so "-lfrench" is rewritten as "-l=french".
func (s *scanner) shortShape(tok string) (string, flagShape, bool) {
	group := tok[1:]
	for i := 0; i < len(group); i++ {
		if group[i] == '=' {
			return tok, shapeBool, true
		}
		shape, ok := s.shorts[group[i]]
		if !ok {
			return tok, shapeBool, false
		}
		last := i == len(group)-1
		switch shape {
		case shapeValue:
			if last {
				return tok, shapeValue, true
			}
			return tok, shapeBool, true
		case shapeNullable:
			if last {
				return tok, shapeNullable, true
			}
			if group[i+1] == '=' {
				return tok, shapeBool, true
			}
			return "-" + group[:i+1] + "=" + group[i+1:], shapeBool, true
		}
	}
	return tok, shapeBool, true
}

// Parse binds tokens to this node's parameters without modifying tokens.
// See [Node.ParseInPlace].
func (n *Node) Parse(tokens []string) (*Result, error) {
	buf := slices.Clone(tokens)
	return n.ParseInPlace(&buf)
}

// ParseInPlace binds tokens to this node's parameters, leaving only the unconsumed tokens in the caller's buffer.
//
// A node with sub-commands stops scanning flags at the first token that isn't a flag, which is taken as the sub-command.
// Everything after it is left for the sub-command.
// A node without sub-commands accepts flags anywhere, and binds the remaining tokens to arguments in declaration order.
//
// Scanning errors are returned as a [*ParseError] with a nil [Result].
// Type casting and validation errors are collected into [ValidationErrors], which is returned along with the [Result] so help can still be shown.
func (n *Node) ParseInPlace(tokens *[]string) (*Result, error) {
	s := n.newScanner()
	if err := s.fs.Parse(s.attachNullable(*tokens)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			err = errors.New("unknown flag: --help")
		}
		return nil, &ParseError{Err: err}
	}
	var errs ValidationErrors
	for _, p := range n.options.list() {
		raw := s.raws[p.Name()]
		if !raw.given {
			continue
		}
		errs.Add(p.Assign(raw.raw()))
	}

	rest := s.fs.Args()
	res := &Result{}
	if n.HasCommands() {
		if len(rest) > 0 {
			res.Command = rest[0]
			rest = rest[1:]
		}
	} else {
		for _, arg := range n.arguments.list() {
			if len(rest) == 0 {
				break
			}
			if arg.Multiple() {
				vals := make([]any, len(rest))
				for i, tok := range rest {
					vals[i] = tok
				}
				errs.Add(arg.Assign(vals))
				rest = nil
				break
			}
			errs.Add(arg.Assign(rest[0]))
			rest = rest[1:]
		}
	}
	*tokens = append((*tokens)[:0], rest...)
	res.Tokens = slices.Clone(rest)
	res.Opts = collect(n.options.list())
	res.Args = collect(n.arguments.list())
	n.result = res
	return res, errs.Result()
}

func collect(params []*param.Parameter) Values {
	vals := Values{}
	for _, p := range params {
		vals[p.Name()] = p.Value()
	}
	return vals
}
