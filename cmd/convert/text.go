package main

import (
	"fmt"
	"github.com/saylorsolutions/clitree/cli"
	"github.com/saylorsolutions/clitree/param"
	"strings"
	"unicode"
	"unicode/utf8"
)

func init() {
	cli.RegisterBundles("app", textBundle, numberBundle)
}

var textBundle = cli.Bundle{
	Name: "Text",
	Template: cli.Template{func(n *cli.Node) {
		n.SetSummary("Manipulate texts")
		n.SetDescription("Provide basic operations on the given text")
		n.Handle("capitalize_string", capitalizeString)
		n.Handle("join_strings", joinStrings)
		n.Handle("replace_string", replaceString)

		n.Command("capitalize", func(n *cli.Node) {
			n.SetSummary("Capitalize a given string")
			n.Argument("str", "String to be capitalized", param.OfType("string"))
			n.ActionNamed("capitalize_string")
		})
		n.Command("join", func(n *cli.Node) {
			n.SetSummary("Concat the given strings with a specified delimiter")
			n.Option("delimiter", "Delimiter to join strings", param.Short("d"), param.Default(", "))
			n.Argument("strs", "Strings to be joined", param.OfType("string"), param.Multiple())
			n.ActionNamed("join_strings")
		})
		n.Command("replace", func(n *cli.Node) {
			n.SetSummary("Replace every occurrence of a substring")
			n.SetDescription("Replaces OLD with NEW in STR, or removes OLD if NEW is not given")
			n.SetSynopsis("[options] STR OLD [NEW]")
			n.ActionNamed("replace_string")
		})
	}},
}

func capitalizeString(inv *cli.Invocation) error {
	str := cli.MustGet[string](inv.Args, "str")
	_, err := fmt.Fprintf(inv.Out, "Capitalize the given string %q:\n%s\n", str, capitalize(str))
	return err
}

// capitalize upper-cases the first character and lower-cases the rest.
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

func joinStrings(inv *cli.Invocation) error {
	strs, _ := cli.GetAll[string](inv.Args, "strs")
	delim := cli.MustGet[string](inv.Opts, "delimiter")
	_, err := fmt.Fprintf(inv.Out, "Join strings %s with %q:\n%s\n", quoteAll(strs), delim, strings.Join(strs, delim))
	return err
}

func quoteAll(strs []string) string {
	quoted := make([]string, len(strs))
	for i, s := range strs {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func replaceString(inv *cli.Invocation) error {
	var str, old, repl string
	if err := inv.MapTokens(2, &str, &old, &repl); err != nil {
		return err
	}
	if len(old) == 0 {
		return cli.NewUsageError("nothing to replace")
	}
	_, err := fmt.Fprintf(inv.Out, "Replace %q with %q in %q:\n%s\n", old, repl, str, strings.ReplaceAll(str, old, repl))
	return err
}
