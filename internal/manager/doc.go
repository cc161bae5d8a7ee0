// Package manager defines the boundary to the module-loading service that
// consumes an assembled catalog.
//
// The catalog builder never opens shared libraries itself; it hands the
// finished catalog to a Loader and propagates whatever that loader says.
// Manager is the in-tree implementation of that boundary: it checks the
// catalog's structure and records which library provides each module name,
// but it performs no dynamic linking. Symbol resolution belongs to the
// platform's real loader.
package manager
