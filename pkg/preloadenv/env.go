// Package preloadenv builds the child-process environment for an
// instrumented launch. The builder copies the launcher's environment and
// overlays explicit keys; the launcher's own environment is never mutated.
package preloadenv

import (
	"errors"
	"os"
	"strings"
)

// ScriptVar carries the user script path to the preloaded binding library,
// which reads it at child startup. The name is fixed by the binding.
const ScriptVar = "QBDPY_SCRIPT"

// ErrPreloadNotSupported is returned on platforms without a dynamic-loader
// preload mechanism.
var ErrPreloadNotSupported = errors.New("preload injection is not supported on this platform")

// Builder accumulates an environment overlay on top of a base snapshot.
type Builder struct {
	base    []string
	overlay map[string]string
	order   []string // overlay keys in first-Set order, for stable output
}

// NewBuilder snapshots the current process environment.
func NewBuilder() *Builder {
	return NewBuilderFrom(os.Environ())
}

// NewBuilderFrom starts from an explicit base environment. The slice is
// copied; later changes to it do not affect the builder.
func NewBuilderFrom(env []string) *Builder {
	base := make([]string, len(env))
	copy(base, env)
	return &Builder{
		base:    base,
		overlay: make(map[string]string),
	}
}

// Set overlays key=value. Setting a key again replaces its value.
func (b *Builder) Set(key, value string) *Builder {
	if _, seen := b.overlay[key]; !seen {
		b.order = append(b.order, key)
	}
	b.overlay[key] = value
	return b
}

// Get returns the effective value of key: the overlay wins, then the base
// snapshot. The second return reports whether the key is present at all.
func (b *Builder) Get(key string) (string, bool) {
	if v, ok := b.overlay[key]; ok {
		return v, true
	}
	for _, kv := range b.base {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v, true
		}
	}
	return "", false
}

// Overlay returns the overlaid keys and values in first-Set order.
func (b *Builder) Overlay() []string {
	entries := make([]string, 0, len(b.order))
	for _, key := range b.order {
		entries = append(entries, key+"="+b.overlay[key])
	}
	return entries
}

// Environ renders the full child environment: the base snapshot with
// overlaid keys replaced in place and new keys appended in first-Set order.
func (b *Builder) Environ() []string {
	replaced := make(map[string]bool, len(b.overlay))
	env := make([]string, 0, len(b.base)+len(b.overlay))

	for _, kv := range b.base {
		if k, _, ok := strings.Cut(kv, "="); ok {
			if v, overlaid := b.overlay[k]; overlaid {
				env = append(env, k+"="+v)
				replaced[k] = true
				continue
			}
		}
		env = append(env, kv)
	}

	for _, key := range b.order {
		if !replaced[key] {
			env = append(env, key+"="+b.overlay[key])
		}
	}
	return env
}
