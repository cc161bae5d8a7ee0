// Package catalog defines the format-agnostic model of a module catalog:
// which shared libraries to load, which named entry points each exposes, and
// what key/value parameters each entry point receives at load time.
//
// The JSON form of these types is the loader's wire representation; the same
// shape is what operators hand in on the modules flag. Append operations
// return handles to the records they create so callers attach modules and
// parameters directly instead of addressing them by position.
package catalog
