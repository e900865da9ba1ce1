package main

import (
	"fmt"
	"github.com/saylorsolutions/clitree/cli"
	"github.com/saylorsolutions/clitree/param"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var numberBundle = cli.Bundle{
	Name: "Number",
	Template: cli.Template{func(n *cli.Node) {
		n.SetSummary("Manipulate numbers")
		n.SetDescription("Provide basic operations on the given number")
		n.Handle("rationalize_number", rationalizeNumber)
		n.Handle("round_number", roundNumber)

		n.Command("rationalize", func(n *cli.Node) {
			n.SetSummary("Return a simpler approximation of the value within an optional specified precision")
			n.Option("precision", "Epsilon for the approximation", param.Short("p"), param.OfType("float"),
				param.Assure(func(v any) bool {
					return v.(float64) >= 0
				}),
			)
			n.Argument("value", "Floating point number to be rationalized", param.OfType("float"))
			n.ActionNamed("rationalize_number")
		})
		n.Command("round", func(n *cli.Node) {
			n.SetSummary("Round the given number to a specified precision in decimal digits")
			n.Option("digits", "Precision in decimal digits", param.Short("d"), param.OfType("integer"), param.Required(true))
			n.Argument("value", "Floating point number to be rounded", param.OfType("float"))
			n.ActionNamed("round_number")
		})
	}},
}

func rationalizeNumber(inv *cli.Invocation) error {
	value := cli.MustGet[float64](inv.Args, "value")
	precision, ok := cli.Get[float64](inv.Opts, "precision")
	if !ok {
		_, err := fmt.Fprintf(inv.Out, "Rationalize value %s:\n%s\n", formatFloat(value), formatRat(rationalize(value)))
		return err
	}
	_, err := fmt.Fprintf(inv.Out, "Rationalize value %s with precision %s:\n%s\n",
		formatFloat(value), formatFloat(precision), formatRat(rationalizeWithin(value, precision)))
	return err
}

// rationalize returns the fraction for the shortest decimal form of v, so 0.1 becomes 1/10 rather than its exact binary value.
func rationalize(v float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'g', -1, 64))
	if !ok {
		return new(big.Rat).SetFloat64(v)
	}
	return r
}

// rationalizeWithin returns the simplest fraction within epsilon of v.
func rationalizeWithin(v, epsilon float64) *big.Rat {
	val := rationalize(v)
	eps := rationalize(math.Abs(epsilon))
	lo := new(big.Rat).Sub(val, eps)
	hi := new(big.Rat).Add(val, eps)
	return simplestBetween(lo, hi)
}

// simplestBetween finds the fraction with the smallest denominator in [lo, hi], using continued fractions.
func simplestBetween(lo, hi *big.Rat) *big.Rat {
	switch {
	case lo.Sign() <= 0 && hi.Sign() >= 0:
		return new(big.Rat)
	case hi.Sign() < 0:
		neg := simplestBetween(new(big.Rat).Neg(hi), new(big.Rat).Neg(lo))
		return neg.Neg(neg)
	}
	fl := floor(lo)
	if lo.Cmp(new(big.Rat).SetInt(fl)) == 0 {
		return new(big.Rat).SetInt(fl)
	}
	next := new(big.Int).Add(fl, big.NewInt(1))
	if hi.Cmp(new(big.Rat).SetInt(next)) >= 0 {
		return new(big.Rat).SetInt(next)
	}
	whole := new(big.Rat).SetInt(fl)
	loFrac := new(big.Rat).Sub(lo, whole)
	hiFrac := new(big.Rat).Sub(hi, whole)
	rest := simplestBetween(new(big.Rat).Inv(hiFrac), new(big.Rat).Inv(loFrac))
	return whole.Add(whole, rest.Inv(rest))
}

// floor relies on Euclidean division, which floors for the always positive denominator.
func floor(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom())
}

func formatRat(r *big.Rat) string {
	return r.Num().String() + "/" + r.Denom().String()
}

func roundNumber(inv *cli.Invocation) error {
	value := cli.MustGet[float64](inv.Args, "value")
	digits := cli.MustGet[int](inv.Opts, "digits")
	_, err := fmt.Fprintf(inv.Out, "Round value %s with precision in %d decimal digits\n%s\n", formatFloat(value), digits, round(value, digits))
	return err
}

// round rounds half away from zero.
// Whole numbers are given without a fraction when digits isn't positive.
func round(v float64, digits int) string {
	scale := math.Pow10(digits)
	rounded := math.Round(v*scale) / scale
	if digits <= 0 {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return formatFloat(rounded)
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
