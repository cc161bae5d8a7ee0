/*
Package builder assembles the built-in test-module catalog.

One declarative table drives the whole assembly: Categories lists every
plugin category with its logical library names, entry points, identifiers,
and optional load-time parameters, and the Assembler turns the table plus a
build Layout into catalog records. Adding a module is a table edit, not a
new builder function.

Assembly is a pure append. Assembling twice yields duplicate library
entries; whether the downstream loader tolerates that is its own affair.
The identifier registry, by contrast, is keyed, so repeated assembly
re-registers the same names without growing it.
*/
package builder
