//go:build linux

package libresolve

// libGlob matches the binding shared object, tolerating versioned
// suffixes such as libqbdpy.so.0.10.
const libGlob = "libqbdpy.so*"
