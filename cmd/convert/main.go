// Convert manipulates texts and numbers given on the command line.
//
//	convert text join -d "|" a b c
//	convert number round -d 2 3.14159
//	convert -i
package main

import (
	"fmt"
	"github.com/saylorsolutions/clitree/cli"
	"os"
)

func main() {
	app, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	app.Start()
}

func newApp() (*cli.App, error) {
	app, err := cli.NewApp("convert", func(n *cli.Node) {
		n.SetVersion("1.0.0")
		n.SetSummary("Convert simple values")
		n.SetDescription("Demo app for clitree")
		n.UseCommands("app")
		n.HelpCommand()
	})
	if err != nil {
		return nil, err
	}
	return app.AllowInteractive(), nil
}
