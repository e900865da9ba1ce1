/*
Package param implements typed command-line parameters: positional arguments, options, nullable options, switches and negatable switches.

A [Parameter] is configured once with [New] and a set of [Attr] values.
Configuration is verified up front, so a malformed default, matcher, domain, or assurance is reported as a [DefinitionError] before any parsing happens.

Raw command-line values flow through [Parameter.Assign], which:

  - Substitutes the default when no value is given.
  - Casts the value (element-wise for multiple parameters) to the declared [Type].
  - Applies the optional [Transform].
  - Validates the result against the matcher, domain, and assurance.

Casting failures produce a [CastError], constraint failures produce a [ValueError].
*/
package param
