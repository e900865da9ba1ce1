package cli

import (
	"github.com/saylorsolutions/clitree/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func testApp(t *testing.T, configs ...Configure) (*App, *strings.Builder) {
	t.Helper()
	app, err := NewApp("test", configs...)
	require.NoError(t, err)
	var buf strings.Builder
	app.Printer().Redirect(&buf)
	app.SetOutput(&buf)
	return app, &buf
}

func TestNewApp_Defaults(t *testing.T) {
	app, _ := testApp(t)
	assert.Equal(t, "test", app.Name())
	assert.Nil(t, app.Parent())
	assert.Equal(t, []string{"test"}, app.Chain())
	assert.Empty(t, app.Summary())
	assert.Empty(t, app.Description())
	assert.Empty(t, app.Version())
	assert.Empty(t, app.Arguments())
	assert.False(t, app.HasCommands())
	assert.Nil(t, app.Result())

	help, ok := app.LookupOption("help")
	require.True(t, ok, "Help should be declared automatically")
	assert.Equal(t, param.Switch, help.Kind())
	assert.Equal(t, "h", help.Short())
	assert.Equal(t, "Show this help message.", help.Description())
}

func TestNewApp_DefaultProgramName(t *testing.T) {
	app, err := NewApp("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProgramName(), app.Name())
	assert.NotEmpty(t, app.Name())
}

func TestNode_DefineParameter(t *testing.T) {
	app, _ := testApp(t, func(n *Node) {
		n.Option("test_opt", "test opt description")
		n.NullableOption("nullable_opt", "nullable opt description")
		n.Switch("test_switch", "test switch description")
		n.NegatableSwitch("negatable_switch", "negatable switch description")
		n.Argument("test_arg", "test arg description")
	})
	tests := map[string]param.Kind{
		"test_opt":         param.Option,
		"nullable_opt":     param.NullableOption,
		"test_switch":      param.Switch,
		"negatable_switch": param.NegatableSwitch,
	}
	for name, kind := range tests {
		t.Run(name, func(t *testing.T) {
			p, ok := app.LookupOption(name)
			require.True(t, ok)
			assert.Equal(t, kind, p.Kind())
			assert.Equal(t, name, p.Name())
			assert.Equal(t, strings.ReplaceAll(name, "_", " ")+" description", p.Description())
		})
	}
	arg, ok := app.LookupArgument("test_arg")
	require.True(t, ok)
	assert.Equal(t, param.Argument, arg.Kind())
	assert.True(t, arg.Required())
}

func TestNode_DefineParameter_LastWriteWins(t *testing.T) {
	app, _ := testApp(t, func(n *Node) {
		n.Option("first", "first")
		n.Option("name", "original")
		n.Option("last", "last")
		n.Option("name", "replacement", param.OfType("integer"))
	})
	var names []string
	for _, p := range app.Options() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"first", "name", "last", "help"}, names, "Replacement should keep the original position")
	p, _ := app.LookupOption("name")
	assert.Equal(t, "replacement", p.Description())
	assert.Equal(t, param.TypeInteger, p.Type())
}

func TestNode_DefinitionErrors(t *testing.T) {
	tests := map[string]Configure{
		"Bad type": func(n *Node) {
			n.Option("bad", "bad type", param.OfType("complex"))
		},
		"Bad default": func(n *Node) {
			n.Option("bad", "bad default", param.OfType("integer"), param.Default("one"))
		},
		"Short conflict": func(n *Node) {
			n.Option("alpha", "alpha", param.Short("a"))
			n.Option("again", "again", param.Short("a"))
		},
		"Flag conflict": func(n *Node) {
			n.Option("dry_run", "underscores")
			n.Option("dry-run", "hyphens")
		},
		"Explicit help conflict": func(n *Node) {
			n.Option("host", "host name", param.Short("h"))
			n.Help("")
		},
		"Missing handler": func(n *Node) {
			n.Command("sub", func(n *Node) {
				n.ActionNamed("missing")
			})
		},
		"Nil action": func(n *Node) {
			n.Action(nil)
		},
		"Root alias": func(n *Node) {
			n.Alias("r")
		},
		"Unknown bundle group": func(n *Node) {
			n.UseCommands("no_such_group")
		},
		"Empty command name": func(n *Node) {
			n.Command(" ")
		},
	}
	for name, config := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewApp("test", config)
			assert.ErrorIs(t, err, param.ErrDefinition)
		})
	}
}

func TestNewApp_NonDefinitionPanic(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = NewApp("test", func(n *Node) {
			panic("something else")
		})
	})
}

func TestNode_AutoHelp(t *testing.T) {
	app, _ := testApp(t, func(n *Node) {
		n.Option("host", "host name", param.Short("h"))
	})
	help, ok := app.LookupOption("help")
	require.True(t, ok)
	assert.Empty(t, help.Short(), "Auto help should give up its short flag when it's taken")

	app, _ = testApp(t, func(n *Node) {
		n.NoAutoHelp()
	})
	_, ok = app.LookupOption("help")
	assert.False(t, ok)

	app, _ = testApp(t, func(n *Node) {
		n.Help("Show this help info.", param.Short("i"))
	})
	help, _ = app.LookupOption("help")
	assert.Equal(t, "i", help.Short())
	assert.Equal(t, "Show this help info.", help.Description())
}

func TestNode_AutoHelp_LaterDeclaration(t *testing.T) {
	app, err := NewApp("test", func(n *Node) {
		n.Command("serve", func(n *Node) {
			n.Option("port", "port to listen on", param.Short("p"))
		})
		n.Command("serve", func(n *Node) {
			n.Option("host", "host name", param.Short("h"))
		})
	})
	require.NoError(t, err)
	serve, ok := app.Subcommand("serve")
	require.True(t, ok)
	host, ok := serve.LookupOption("host")
	require.True(t, ok)
	assert.Equal(t, "h", host.Short())
	help, ok := serve.LookupOption("help")
	require.True(t, ok)
	assert.Empty(t, help.Short(), "Auto help should give up its short flag to a later declaration")
	assert.Equal(t, "help", serve.Options()[1].Name(), "Auto help should keep its place")

	_, err = NewApp("test", func(n *Node) {
		n.Command("serve", func(n *Node) {
			n.Help("", param.Short("h"))
		})
		n.Command("serve", func(n *Node) {
			n.Option("host", "host name", param.Short("h"))
		})
	})
	assert.ErrorIs(t, err, param.ErrDefinition, "Explicit help keeps its short flag")
}

func TestNode_SetVersion(t *testing.T) {
	app, _ := testApp(t, func(n *Node) {
		n.SetVersion("1.0.0")
	})
	assert.Equal(t, "1.0.0", app.Version())
	ver, ok := app.LookupOption("version")
	require.True(t, ok)
	assert.Equal(t, param.Switch, ver.Kind())
	assert.Equal(t, "v", ver.Short())
	assert.Equal(t, "Show test version.", ver.Description())

	app, _ = testApp(t, func(n *Node) {
		n.SetVersion("2.0.0", param.Short("s"))
	})
	ver, _ = app.LookupOption("version")
	assert.Equal(t, "s", ver.Short())
}

func TestNode_Command(t *testing.T) {
	app, _ := testApp(t, func(n *Node) {
		n.Command("text", func(n *Node) {
			n.Option("first", "from the first declaration")
		})
		n.Command("number")
		n.Command("Text", func(n *Node) {
			n.Option("second", "from the second declaration")
		})
	})
	assert.Equal(t, []string{"text", "number"}, app.ListCommands())
	text, ok := app.Subcommand("text")
	require.True(t, ok)
	assert.Same(t, app.Node, text.Parent())
	assert.Same(t, app, text.App())
	_, ok = text.LookupOption("first")
	assert.True(t, ok, "Configuration should be merged into the existing command")
	_, ok = text.LookupOption("second")
	assert.True(t, ok)
}

func TestNode_Chain(t *testing.T) {
	var join *Node
	app, _ := testApp(t, func(n *Node) {
		n.Command("text", func(n *Node) {
			join = n.Command("join")
		})
	})
	assert.Equal(t, []string{"test", "text", "join"}, join.Chain())
	assert.Equal(t, "test text join", join.Path())
	assert.Same(t, app.Node, join.Root())

	chain := join.Chain()
	chain[0] = "changed"
	assert.Equal(t, []string{"test", "text", "join"}, join.Chain(), "Callers should not be able to change the memoized chain")
}

func TestNode_Remove(t *testing.T) {
	app, _ := testApp(t, func(n *Node) {
		n.Option("project", "project name")
		n.Argument("manager", "project manager")
		n.Command("create").Alias("c")
	})
	assert.NoError(t, app.RemoveParameter("project"))
	assert.NoError(t, app.RemoveParameter("manager"))
	assert.ErrorIs(t, app.RemoveParameter("project"), ErrMissingParameter)
	assert.Empty(t, app.Arguments())

	assert.NoError(t, app.RemoveCommand("c"), "Commands can be removed by alias")
	assert.False(t, app.HasCommands())
	assert.ErrorIs(t, app.RemoveCommand("create"), ErrMissingCommand)
}

func TestNode_Alter(t *testing.T) {
	app, _ := testApp(t)
	app.Alter(func(n *Node) {
		n.SetSummary("altered")
		n.Switch("verbose", "Run in verbose mode")
	})
	assert.Equal(t, "altered", app.Summary())
	_, ok := app.LookupOption("verbose")
	assert.True(t, ok)
}

func TestNode_HelpCommand(t *testing.T) {
	app, _ := testApp(t, func(n *Node) {
		n.HelpCommand()
	})
	help, ok := app.Subcommand("help")
	require.True(t, ok)
	assert.Equal(t, "List all commands or help for one command", help.Summary())
	arg, ok := help.LookupArgument("command")
	require.True(t, ok)
	assert.Equal(t, param.TypeSymbol, arg.Type())
	assert.False(t, arg.Required())
	assert.True(t, arg.Valid(param.Symbol("help")))
	assert.False(t, arg.Valid(param.Symbol("nope")))
}

func TestTemplate_Extend(t *testing.T) {
	var applied []string
	step := func(name string) Configure {
		return func(n *Node) {
			applied = append(applied, name)
		}
	}
	base := make(Template, 1, 4)
	base[0] = step("base")
	a := base.Extend(step("a"))
	b := base.Extend(step("b"))
	assert.Len(t, base, 1, "Extending must not change the base")

	a.Apply(&Node{})
	b.Apply(&Node{})
	assert.Equal(t, []string{"base", "a", "base", "b"}, applied)
}

func TestNode_Import(t *testing.T) {
	textTools := Bundle{
		Name: "TextTools",
		Template: Template{func(n *Node) {
			n.SetSummary("Manipulate texts")
		}},
	}
	numbers := Bundle{
		Name: "Number",
		Template: Template{func(n *Node) {
			n.SetSummary("Manipulate numbers")
		}},
	}
	app, _ := testApp(t, func(n *Node) {
		n.Import(textTools)
		n.ImportAs("num", numbers, func(n *Node) {
			n.SetDescription("imported with a name")
		})
	})
	assert.Equal(t, []string{"text_tools", "num"}, app.ListCommands())
	num, _ := app.Subcommand("num")
	assert.Equal(t, "Manipulate numbers", num.Summary())
	assert.Equal(t, "imported with a name", num.Description())
}

func TestNode_UseCommands(t *testing.T) {
	RegisterBundles("node_test_group",
		Bundle{Name: "TextTools", Template: Template{func(n *Node) { n.SetSummary("Manipulate texts") }}},
		Bundle{Name: "HTTPServer", Template: Template{func(n *Node) { n.SetSummary("Serve things") }}},
	)
	app, _ := testApp(t, func(n *Node) {
		n.UseCommands("NodeTestGroup")
	})
	assert.Equal(t, []string{"text_tools", "http_server"}, app.ListCommands())
}

func TestNode_Reset(t *testing.T) {
	app, _ := testApp(t, func(n *Node) {
		n.Option("project", "project name")
		n.Switch("verbose", "verbose", param.Default(false))
		n.Command("create", func(n *Node) {
			n.Argument("manager", "project manager")
			n.Action(func(inv *Invocation) error { return nil })
		})
	})
	require.NoError(t, app.Run([]string{"--project", "test project", "--verbose", "create", "John Smith"}))
	project, _ := app.LookupOption("project")
	create, _ := app.Subcommand("create")
	manager, _ := create.LookupArgument("manager")
	assert.Equal(t, "test project", project.Value())
	assert.Equal(t, "John Smith", manager.Value())
	assert.Equal(t, "test project", app.Result().Opts["project"])
	assert.Equal(t, "John Smith", create.Result().Args["manager"])

	app.Reset()
	assert.Nil(t, project.Value())
	assert.Nil(t, manager.Value())
	verbose, _ := app.LookupOption("verbose")
	assert.Equal(t, false, verbose.Value())
	assert.Nil(t, app.Result())
	assert.Nil(t, create.Result())

	app.Reset()
	assert.Equal(t, false, verbose.Value(), "Reset should be idempotent")
}
