//go:build windows

package preloadenv

// PreloadVar returns the platform's preload environment variable name.
// Windows has no dynamic-loader preload mechanism.
func PreloadVar() string { return "" }

// ApplyPreload is not supported on Windows.
func (b *Builder) ApplyPreload(libraryPath string) error {
	return ErrPreloadNotSupported
}
