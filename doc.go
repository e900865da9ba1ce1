/*
Package clitree is a declarative framework for hierarchical command line interfaces.

An application declares typed options, switches, and arguments, along with nested sub-commands, using the cli package.
Command lines are parsed into validated values of the declared types, defined in the param package, and dispatched to the action of the selected command.

The rc package loads per-user settings files, and the slogx package sets up logging suited to a command line program.
The cmd directory has example programs using all of it.
*/
package clitree
