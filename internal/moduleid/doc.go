/*
Package moduleid enumerates the identifiers for the pluggable test modules
the catalog builder knows about.

An ID is an opaque, comparable handle for exactly one loadable entry point.
The human-readable name the dynamic loader resolves at load time is not
derivable from the ID; that mapping is owned by the registry package and is
recorded as a side effect of catalog assembly.
*/
package moduleid
