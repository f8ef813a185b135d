package preloadenv

import (
	"os"
	"reflect"
	"testing"
)

func TestBuilder_SetAndGet(t *testing.T) {
	b := NewBuilderFrom([]string{"PATH=/usr/bin", "HOME=/home/u"})

	b.Set("QBDPY_SCRIPT", "/tmp/trace.py")

	tests := []struct {
		key       string
		want      string
		wantFound bool
	}{
		{"QBDPY_SCRIPT", "/tmp/trace.py", true},
		{"PATH", "/usr/bin", true},
		{"HOME", "/home/u", true},
		{"MISSING", "", false},
	}

	for _, tt := range tests {
		got, found := b.Get(tt.key)
		if got != tt.want || found != tt.wantFound {
			t.Errorf("Get(%q) = (%q, %v), want (%q, %v)", tt.key, got, found, tt.want, tt.wantFound)
		}
	}
}

func TestBuilder_OverlayWinsOverBase(t *testing.T) {
	b := NewBuilderFrom([]string{"PATH=/usr/bin"})

	b.Set("PATH", "/custom/bin")

	got, found := b.Get("PATH")
	if !found || got != "/custom/bin" {
		t.Errorf("Get(PATH) = (%q, %v), want (/custom/bin, true)", got, found)
	}
}

func TestBuilder_Environ(t *testing.T) {
	b := NewBuilderFrom([]string{"PATH=/usr/bin", "HOME=/home/u", "TERM=xterm"})

	b.Set("HOME", "/other")
	b.Set("QBDPY_SCRIPT", "/tmp/trace.py")
	b.Set("LD_BIND_NOW", "1")

	want := []string{
		"PATH=/usr/bin",
		"HOME=/other",
		"TERM=xterm",
		"QBDPY_SCRIPT=/tmp/trace.py",
		"LD_BIND_NOW=1",
	}
	if got := b.Environ(); !reflect.DeepEqual(got, want) {
		t.Errorf("Environ() = %v, want %v", got, want)
	}
}

func TestBuilder_EnvironPreservesInheritedVariables(t *testing.T) {
	base := []string{"A=1", "B=2", "C=3"}
	b := NewBuilderFrom(base)

	b.Set("QBDPY_SCRIPT", "/tmp/trace.py")
	env := b.Environ()

	for _, kv := range base {
		found := false
		for _, e := range env {
			if e == kv {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("inherited variable %q missing from Environ()", kv)
		}
	}
}

func TestBuilder_SetReplacesValue(t *testing.T) {
	b := NewBuilderFrom(nil)

	b.Set("K", "first").Set("K", "second")

	if got := b.Overlay(); len(got) != 1 || got[0] != "K=second" {
		t.Errorf("Overlay() = %v, want [K=second]", got)
	}
}

func TestBuilder_Overlay(t *testing.T) {
	b := NewBuilderFrom([]string{"PATH=/usr/bin"})

	b.Set("B", "2")
	b.Set("A", "1")

	want := []string{"B=2", "A=1"}
	if got := b.Overlay(); !reflect.DeepEqual(got, want) {
		t.Errorf("Overlay() = %v, want %v", got, want)
	}
}

func TestBuilder_BaseIsCopied(t *testing.T) {
	base := []string{"A=1"}
	b := NewBuilderFrom(base)

	base[0] = "A=mutated"

	if got, _ := b.Get("A"); got != "1" {
		t.Errorf("Get(A) = %q after mutating caller slice, want 1", got)
	}
}

func TestNewBuilder_DoesNotMutateProcessEnv(t *testing.T) {
	t.Setenv("QBDIRUN_TEST_VAR", "original")

	b := NewBuilder()
	b.Set("QBDIRUN_TEST_VAR", "overlaid")
	_ = b.Environ()

	if got := os.Getenv("QBDIRUN_TEST_VAR"); got != "original" {
		t.Errorf("process env mutated: QBDIRUN_TEST_VAR = %q, want original", got)
	}
}
