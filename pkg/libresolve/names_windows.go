//go:build windows

package libresolve

const libGlob = "qbdpy*.dll"
