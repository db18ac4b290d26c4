package maybe_test

import (
	"strings"
	"testing"

	. "github.com/npillmayer/domtree/maybe"
)

func TestMaybeMatch(t *testing.T) {
	title := Just("Home")
	var v string
	switch m := title.Match(); m {
	case m.Just(&v):
		t.Logf("title = %q", v)
	case m.Nothing():
		t.Error("expected title to be present")
	}
	if v != "Home" {
		t.Errorf("expected v to be Home, is %q", v)
	}
	var w string
	switch m := Nothing[string]().Match(); m {
	case m.Just(&w):
		t.Errorf("expected no value, have %q", w)
	case m.Nothing():
		w = "absent"
	}
	if w != "absent" {
		t.Errorf("expected Nothing to match, didn't")
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just("x").Get(); !ok || v != "x" {
		t.Errorf("expected Just(x).Get() to return (x, true), is (%q, %v)", v, ok)
	}
	if _, ok := Nothing[string]().Get(); ok {
		t.Error("expected Nothing.Get() to report absence, didn't")
	}
	if !Nothing[int]().IsNothing() {
		t.Error("expected Nothing to be nothing")
	}
	if lang := Nothing[string]().WithDefault("en"); lang != "en" {
		t.Errorf("expected default lang en, is %q", lang)
	}
}

func TestMaybeNonZero(t *testing.T) {
	if !NonZero("").IsNothing() {
		t.Error("expected empty string to be Nothing")
	}
	if v := NonZero("rust").WithDefault("none"); v != "rust" {
		t.Errorf("expected NonZero(rust) to be Just(rust), is %q", v)
	}
	attrs := map[string]string{"id": "main"}
	v, ok := attrs["class"]
	if !Of(v, ok).IsNothing() {
		t.Error("expected missing class to be Nothing")
	}
}

func TestMaybeMap(t *testing.T) {
	lang := Map(func(s string) string { return "language-" + s }, Just("go"))
	if v := lang.WithDefault(""); v != "language-go" {
		t.Errorf("expected language-go, is %q", v)
	}
	if !Nothing[string]().Map(strings.ToUpper).IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
}

func TestMaybeAndThen(t *testing.T) {
	firstWord := func(s string) Maybe[string] {
		if f := strings.Fields(s); len(f) > 0 {
			return Just(f[0])
		}
		return Nothing[string]()
	}
	if v := AndThen(firstWord, Just("rust ignore")).WithDefault(""); v != "rust" {
		t.Errorf("expected first word rust, is %q", v)
	}
	if !AndThen(firstWord, Just("   ")).IsNothing() {
		t.Error("expected blank info string to yield Nothing")
	}
	if !AndThen(firstWord, Nothing[string]()).IsNothing() {
		t.Error("expected Nothing to stay Nothing")
	}
}

func TestMaybeFilter(t *testing.T) {
	notBlank := func(s string) bool { return strings.TrimSpace(s) != "" }
	if !Filter(notBlank, Just("  ")).IsNothing() {
		t.Error("expected Filter to drop a blank alt text")
	}
	if v := Filter(notBlank, Just("logo")).WithDefault(""); v != "logo" {
		t.Errorf("expected Filter to keep logo, is %q", v)
	}
}
