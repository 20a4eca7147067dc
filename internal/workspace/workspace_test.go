package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_IsolatesRuns(t *testing.T) {
	parent := t.TempDir()
	a, err := New(parent)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(parent)
	if err != nil {
		t.Fatal(err)
	}
	if a.Dir() == b.Dir() {
		t.Fatalf("expected distinct run dirs, both %s", a.Dir())
	}
	if a.Input() == b.Input() {
		t.Fatalf("expected distinct artifact paths")
	}
	if filepath.Dir(a.Input()) != a.Dir() {
		t.Fatalf("artifact outside workspace: %s", a.Input())
	}
}

func TestCleanup_RemovesArtifacts(t *testing.T) {
	ws, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ws.Input(), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ws.Cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if _, err := os.Stat(ws.Dir()); !os.IsNotExist(err) {
		t.Fatalf("expected workspace removed, stat err=%v", err)
	}
}
