//go:build linux

package preloadenv

// preloadVar is the dynamic loader's preload list on Linux.
const preloadVar = "LD_PRELOAD"

// PreloadVar returns the platform's preload environment variable name.
func PreloadVar() string { return preloadVar }

// ApplyPreload overlays the variables that make the dynamic loader inject
// libraryPath into the child. An existing preload list is preserved with
// our library prepended. LD_BIND_NOW forces eager symbol binding so the
// instrumentation engine sees resolved addresses from the start.
func (b *Builder) ApplyPreload(libraryPath string) error {
	if existing, ok := b.Get(preloadVar); ok && existing != "" {
		b.Set(preloadVar, libraryPath+":"+existing)
	} else {
		b.Set(preloadVar, libraryPath)
	}
	b.Set("LD_BIND_NOW", "1")
	return nil
}
