// Hello says hello to someone in one of several languages.
//
// The punctuation ending the greeting can be set with "punctuation" in ~/.hellorc, or the HELLO_PUNCTUATION environment variable.
package main

import (
	"fmt"
	"github.com/saylorsolutions/clitree/cli"
	"github.com/saylorsolutions/clitree/param"
	"github.com/saylorsolutions/clitree/rc"
	"os"
)

var helloTexts = map[param.Symbol]string{
	"english":  "Hello",
	"french":   "Bonjour",
	"german":   "Hallo",
	"italian":  "Ciao",
	"chinese":  "您好",
	"japanese": "こんにちは",
	"korean":   "안녕하세요",
}

var languages = []any{
	param.Symbol("english"),
	param.Symbol("french"),
	param.Symbol("german"),
	param.Symbol("italian"),
	param.Symbol("chinese"),
	param.Symbol("japanese"),
	param.Symbol("korean"),
}

func main() {
	app, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	app.Start()
}

func newApp() (*cli.App, error) {
	app, err := cli.NewApp("hello", func(n *cli.Node) {
		n.SetVersion("1.0.0")
		n.SetSummary("Say hello to someone")
		n.SetDescription("Demo app for clitree")
		n.Option("lang", "Language to say hello", param.Short("l"),
			param.OfType("symbol"), param.Default(param.Symbol("english")), param.WithinValues(languages...))
		n.Switch("verbose", "Run in verbose mode", param.Short("V"))
		n.Argument("name", "Name to say hello")
		n.Action(sayHello)
	})
	if err != nil {
		return nil, err
	}
	app.SetRCDefaults(map[string]any{
		"punctuation": "!",
	})
	return app, nil
}

func sayHello(inv *cli.Invocation) error {
	lang := cli.MustGet[param.Symbol](inv.Opts, "lang")
	name := cli.MustGet[string](inv.Args, "name")
	settings := inv.Node.App().RC().Merge(rc.FromEnv(inv.Node.App().EnvPrefix()))
	inv.Logger.Debug("Saying hello", "lang", lang, "name", name)
	if verbose, _ := cli.Get[bool](inv.Opts, "verbose"); verbose {
		if _, err := fmt.Fprintf(inv.Out, "Options: %v\nArguments: %v\n", inv.Opts, inv.Args); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(inv.Out, "%s, %s%s\n", helloTexts[lang], name, settings.Val("punctuation", "!"))
	return err
}
