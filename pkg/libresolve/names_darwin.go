//go:build darwin

package libresolve

// libGlob matches the binding shared object, tolerating versioned
// names such as libqbdpy.0.10.dylib.
const libGlob = "libqbdpy*.dylib"
