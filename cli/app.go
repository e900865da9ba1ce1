package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/clitree/param"
	"github.com/saylorsolutions/clitree/rc"
	"github.com/saylorsolutions/clitree/slogx"
	"github.com/saylorsolutions/clitree/textcase"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// App is the root of a command tree, along with the collaborators used while running it.
type App struct {
	*Node
	printer     *Printer
	out         io.Writer
	renderer    Renderer
	logger      *slog.Logger
	loggerSet   bool
	logCloser   io.Closer
	hooks       []Hook
	exit        func(code int)
	rcPath      string
	rcDefaults  map[string]any
	rc          rc.Overlay
	interactive bool
}

// NewApp creates an application named for the program, configured by configs.
// An empty program name uses the base name of the running executable.
//
// Declaration mistakes are returned as an error matching [param.ErrDefinition], including actions bound with [Node.ActionNamed] that have no handler.
func NewApp(program string, configs ...Configure) (app *App, err error) {
	if len(strings.TrimSpace(program)) == 0 {
		program = DefaultProgramName()
	}
	app = &App{
		printer:  NewPrinter(),
		out:      os.Stdout,
		renderer: NewTextRenderer(),
		logger:   slog.New(slog.DiscardHandler),
		exit:     os.Exit,
	}
	app.Node = newNode(app, nil, program)
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok || !errors.Is(rerr, param.ErrDefinition) {
				panic(r)
			}
			app, err = nil, rerr
		}
	}()
	app.configure(configs)
	if err := app.verify(); err != nil {
		return nil, err
	}
	return app, nil
}

// MustNewApp is like [NewApp], but panics on error.
func MustNewApp(program string, configs ...Configure) *App {
	app, err := NewApp(program, configs...)
	if err != nil {
		panic(err)
	}
	return app
}

// DefaultProgramName is the base name of the running executable without an extension.
func DefaultProgramName() string {
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Printer returns the [Printer] used for help, versions, and usage errors.
func (a *App) Printer() *Printer {
	return a.printer
}

// SetOutput changes where actions should write their results, which is [Invocation.Out].
// This is STDOUT by default.
func (a *App) SetOutput(w io.Writer) *App {
	a.out = w
	return a
}

// SetRenderer replaces the help and version [Renderer].
func (a *App) SetRenderer(r Renderer) *App {
	if r == nil {
		panic("nil renderer")
	}
	a.renderer = r
	return a
}

// Logger returns the application logger, which discards everything until [App.ConfigureLogging] or [App.SetLogger] is called.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// SetLogger replaces the application logger, and stops [App.Start] from configuring one.
func (a *App) SetLogger(logger *slog.Logger) *App {
	a.logger = logger
	a.loggerSet = true
	return a
}

// SetExit replaces the function [App.Start] uses to exit the process.
func (a *App) SetExit(fn func(code int)) *App {
	a.exit = fn
	return a
}

// AllowInteractive lets [App.Start] enter interactive mode when the [InteractiveFlag] is the first argument.
func (a *App) AllowInteractive() *App {
	a.interactive = true
	return a
}

// EnvPrefix is the prefix of environment variables that override rc settings, e.g. "CONVERT_".
func (a *App) EnvPrefix() string {
	return strings.ToUpper(textcase.Snake(a.name)) + "_"
}

// SetRCDefaults sets the values used for settings missing from the rc file.
func (a *App) SetRCDefaults(defaults map[string]any) *App {
	a.rcDefaults = defaults
	a.rc = nil
	return a
}

// SetRCPath overrides the rc file location, which is "$HOME/.<program>rc" by default.
func (a *App) SetRCPath(path string) *App {
	a.rcPath = path
	a.rc = nil
	return a
}

// RCPath returns the rc file location.
func (a *App) RCPath() (string, error) {
	if len(a.rcPath) > 0 {
		return a.rcPath, nil
	}
	return rc.DefaultPath(a.name)
}

// LoadRC reads the rc file, merged over the defaults.
// A missing rc file is not an error.
func (a *App) LoadRC() error {
	path, err := a.RCPath()
	if err != nil {
		return err
	}
	overlay, err := rc.Load(path, a.rcDefaults)
	if err != nil {
		return err
	}
	a.rc = overlay
	return nil
}

// RC returns the settings loaded by [App.LoadRC], or the defaults if nothing has been loaded.
func (a *App) RC() rc.Overlay {
	if a.rc == nil {
		return rc.Overlay(a.rcDefaults).Clone()
	}
	return a.rc
}

// ConfigureLogging sets up the application logger from the "log_level", "log_file", and "log_file_level" settings.
// Settings are taken from the rc file, and can be overridden with environment variables starting with [App.EnvPrefix].
// Records are written to w at the "warn" level by default, and to the log file at the "debug" level by default.
// A log file opened by an earlier call is closed first, and the logger is left unchanged if that fails.
func (a *App) ConfigureLogging(w io.Writer) error {
	settings := a.RC().Merge(rc.FromEnv(a.EnvPrefix()))
	level := slogx.ParseLevel(settings.Val("log_level", ""), slog.LevelWarn)
	handler := slogx.NewHandler(w, level)
	if path := settings.Val("log_file", ""); len(path) > 0 {
		fileHandler, closer, err := slogx.OpenFileHandler(path, slogx.ParseLevel(settings.Val("log_file_level", ""), slog.LevelDebug))
		if err != nil {
			return err
		}
		if err := a.Close(); err != nil {
			_ = closer.Close()
			return fmt.Errorf("closing previous log file: %w", err)
		}
		a.logCloser = closer
		handler = slogx.MergeHandlers(handler, fileHandler)
	}
	a.logger = slog.New(handler)
	return nil
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// Start runs the application with the process arguments, and exits with the resulting [ExitCode].
func (a *App) Start() {
	a.exit(ExitCode(a.StartWith(os.Args[1:])))
}

// StartWith loads the rc file, configures logging, and runs args.
// Errors that aren't usage errors are printed, since usage errors have already been reported with help.
func (a *App) StartWith(args []string) error {
	err := a.start(args)
	if err != nil && !IsUsageError(err) {
		a.printer.Println("Error:", err)
	}
	return err
}

func (a *App) start(args []string) error {
	if err := a.LoadRC(); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if !a.loggerSet {
		if err := a.ConfigureLogging(os.Stderr); err != nil {
			return err
		}
	}
	defer func() {
		_ = a.Close()
	}()
	if a.interactive && len(args) > 0 && args[0] == InteractiveFlag {
		return a.Interactive(os.Stdin)
	}
	return a.Run(args)
}
