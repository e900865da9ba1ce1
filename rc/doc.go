/*
Package rc loads the flat key/value overlay an application reads at start up, conventionally from "$HOME/.<program>rc".

The overlay is merged over application supplied defaults, with values from the file taking precedence.
The file format is chosen by extension:

  - ".toml" is decoded as TOML.
  - ".json" and ".jsonc" are decoded as JSON, with comments and trailing commas allowed.
  - ".hcl" is decoded as HCL attributes.
  - Anything else, including the conventional extension-less rc file, is decoded as YAML.

Environment variables can be layered on top with [FromEnv].
An [Overlay] is read-only as far as the command tree is concerned.
*/
package rc
