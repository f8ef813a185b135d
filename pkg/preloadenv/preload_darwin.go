//go:build darwin

package preloadenv

// preloadVar is dyld's insert list on macOS.
const preloadVar = "DYLD_INSERT_LIBRARIES"

// PreloadVar returns the platform's preload environment variable name.
func PreloadVar() string { return preloadVar }

// ApplyPreload overlays the variables that make dyld inject libraryPath
// into the child. An existing insert list is preserved with our library
// prepended. DYLD_BIND_AT_LAUNCH forces eager symbol binding so the
// instrumentation engine sees resolved addresses from the start.
func (b *Builder) ApplyPreload(libraryPath string) error {
	if existing, ok := b.Get(preloadVar); ok && existing != "" {
		b.Set(preloadVar, libraryPath+":"+existing)
	} else {
		b.Set(preloadVar, libraryPath)
	}
	b.Set("DYLD_BIND_AT_LAUNCH", "1")
	return nil
}
