/*
Package cli provides a declarative way to build a CLI as a tree of commands with typed options and arguments.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output like help and usage errors goes to STDERR by default. This is supported with a configurable [Printer].
  - This package uses [pflag] for posix style flags, and [param] for typing and validating values.
  - A command with sub-commands stops scanning flags at the first bare token, which selects the sub-command. Flags apply to the command they follow.
  - A command without sub-commands accepts flags anywhere, and binds everything else to its arguments in declaration order.
  - Sub-command aliases are often very convenient, so they're supported with [Node.Alias].

# Invocation

Invoking a CLI with sub-commands always follows this form:

	CLI_NAME [OPTIONS...] COMMAND [COMMAND OPTIONS...] [SUB-COMMAND...] [ARGS...]

This consistency helps to build muscle memory for frequent CLI use, and a predictable user experience.

# Declaring commands

An [App] is created with [NewApp] and a list of [Configure] functions, which declare parameters and sub-commands on a [Node].
Configuration can be shared with a [Template], and whole commands can be imported from a [Bundle].
Mistakes in declarations are reported by [NewApp] as errors matching [param.ErrDefinition].

# Usage by default

Every command gets "--help" and "-h" unless [Node.NoAutoHelp] is used, and [Node.SetVersion] adds "--version" and "-v".
These are answered before any validation happens.

Usage errors, like unknown flags, missing required values, values that fail validation, or a missing or unknown sub-command, are reported along with the help for the command that failed.
They're returned as an [*AbortError], which [ExitCode] maps to 64.
An action may return a [UsageError] to get the same treatment.

# Prioritizing Dev UX

Developers want nice things too, especially with tooling they rely on.
This is the motivation for interactive mode.

If your CLI calls [App.AllowInteractive], then the [InteractiveFlag] (which can be changed) may be passed to enter this mode.

If you want to work with a nested sub-command the [UseCommand] can be used to push that string of sub-commands to an invocation stack.
Use the [BackCommand] to pop the invocation stack and go back to where you were.

To exit interactive mode, use one of the [InteractiveQuitCommands] at the prompt.

[pflag]: https://github.com/spf13/pflag
*/
package cli
