// Package libpath resolves logical library names to the file names the
// platform's dynamic loader expects.
package libpath

import "runtime"

const prefix = "lib"

// Expand converts a logical library name into the platform's shared-library
// file name, e.g. "testisolator" becomes "libtestisolator.so" on Linux and
// "libtestisolator.dylib" on macOS. It is a pure string transformation; no
// file needs to exist.
func Expand(name string) string {
	return expand(name, runtime.GOOS)
}

func expand(name, goos string) string {
	switch goos {
	case "darwin":
		return prefix + name + ".dylib"
	case "windows":
		// Windows import libraries carry no "lib" prefix.
		return name + ".dll"
	default:
		return prefix + name + ".so"
	}
}
