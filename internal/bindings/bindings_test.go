package bindings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMapContainsExpectedBindings(t *testing.T) {
	m := DefaultMap()

	cases := map[string]ActionID{
		"left":      ActionNavigateLeft,
		"shift+tab": ActionNavigateLeft,
		"right":     ActionNavigateRight,
		"tab":       ActionNavigateRight,
		"backspace": ActionDelete,
		"ctrl+v":    ActionPaste,
		"enter":     ActionSubmit,
		"esc":       ActionQuit,
		"ctrl+c":    ActionQuit,
	}
	for key, want := range cases {
		binding, ok := m.MatchSingle(key)
		if !ok || binding.Action != want {
			t.Fatalf("expected %s -> %s, got %+v (ok=%v)", key, want, binding, ok)
		}
	}

	if _, ok := m.MatchSingle("a"); ok {
		t.Fatalf("expected printable keys to stay unbound")
	}
}

func TestKeysPreserveOrder(t *testing.T) {
	keys := DefaultMap().Keys(ActionDelete)
	if len(keys) != 3 || keys[0] != "backspace" {
		t.Fatalf("unexpected delete keys %v", keys)
	}
	keys[0] = "mutated"
	if DefaultMap().Keys(ActionDelete)[0] != "backspace" {
		t.Fatalf("Keys must return a copy")
	}
}

func TestLoadOverridesBindings(t *testing.T) {
	dir := t.TempDir()
	payload := `
[bindings]
paste = ["ctrl+shift+v"]
quit = ["ctrl+q"]
`
	path := filepath.Join(dir, "bindings.toml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bindings: %v", err)
	}

	m, src, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if src.Path != path || src.Format != FormatTOML {
		t.Fatalf("unexpected source %+v", src)
	}

	if binding, ok := m.MatchSingle("ctrl+v"); ok {
		t.Fatalf("expected ctrl+v to be unbound, got %v", binding.Action)
	}
	if binding, ok := m.MatchSingle("ctrl+shift+v"); !ok || binding.Action != ActionPaste {
		t.Fatalf("expected ctrl+shift+v -> paste, got %+v (ok=%v)", binding, ok)
	}
	if _, ok := m.MatchSingle("esc"); ok {
		t.Fatalf("expected esc to be unbound after override")
	}
	if binding, ok := m.MatchSingle("ctrl+q"); !ok || binding.Action != ActionQuit {
		t.Fatalf("expected ctrl+q -> quit, got %+v (ok=%v)", binding, ok)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	payload := `{"bindings": {"clear": ["Ctrl+K"]}}`
	if err := os.WriteFile(filepath.Join(dir, "bindings.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write bindings: %v", err)
	}
	m, src, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if src.Format != FormatJSON {
		t.Fatalf("expected json source, got %q", src.Format)
	}
	if binding, ok := m.MatchSingle("ctrl+k"); !ok || binding.Action != ActionClear {
		t.Fatalf("expected ctrl+k -> clear, got %+v (ok=%v)", binding, ok)
	}
}

func TestLoadMissingFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	m, src, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if src.Path != filepath.Join(dir, "bindings.toml") {
		t.Fatalf("unexpected default source %q", src.Path)
	}
	if _, ok := m.MatchSingle("enter"); !ok {
		t.Fatalf("expected default enter binding")
	}
}

func TestLoadRejectsConflictingBindings(t *testing.T) {
	dir := t.TempDir()
	payload := `
[bindings]
paste = ["ctrl+s"]
clear = ["ctrl+s"]
`
	path := filepath.Join(dir, "bindings.toml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bindings: %v", err)
	}

	if _, _, err := Load(dir); err == nil {
		t.Fatal("expected conflict error, got nil")
	}
}

func TestLoadRejectsPrintableAndUnknown(t *testing.T) {
	for name, payload := range map[string]string{
		"printable": "[bindings]\nclear = [\"x\"]\n",
		"unknown":   "[bindings]\nlaunch = [\"ctrl+l\"]\n",
		"chord":     "[bindings]\nclear = [\"g g\"]\n",
	} {
		dir := t.TempDir()
		path := filepath.Join(dir, "bindings.toml")
		if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
			t.Fatalf("write bindings: %v", err)
		}
		if _, _, err := Load(dir); err == nil {
			t.Fatalf("%s: expected error, got nil", name)
		}
	}
}

func TestNormalizeKeyString(t *testing.T) {
	cases := map[string]string{
		"Ctrl+V":         "ctrl+v",
		"shift+ctrl+tab": "ctrl+shift+tab",
		"A":              "shift+a",
		"Enter":          "enter",
		"":               "",
	}
	for in, want := range cases {
		if got := NormalizeKeyString(in); got != want {
			t.Fatalf("NormalizeKeyString(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestActionsFollowHelpOrder(t *testing.T) {
	got := Actions()
	if len(got) != len(definitions) {
		t.Fatalf("expected %d actions, got %d", len(definitions), len(got))
	}
	if got[0] != ActionNavigateLeft || got[len(got)-1] != ActionQuit {
		t.Fatalf("unexpected order %v", got)
	}
	for _, id := range got {
		if Help(id) == "" {
			t.Fatalf("action %q has no help text", id)
		}
	}
}
