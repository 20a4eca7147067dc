package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tmp := t.TempDir()
	in := filepath.Join(tmp, "in.mp4")
	if err := os.WriteFile(in, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"ok", Config{Input: in, OutPath: filepath.Join(tmp, "out.mp4")}, ""},
		{"empty input", Config{OutPath: "out.mp4"}, "input is empty"},
		{"missing input", Config{Input: filepath.Join(tmp, "nope.mp4"), OutPath: "out.mp4"}, "stat input"},
		{"empty output", Config{Input: in}, "output path is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCopyFile(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.bin")
	dst := filepath.Join(tmp, "dst.bin")
	if err := os.WriteFile(src, []byte("clip bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copyFile: %v", err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "clip bytes" {
		t.Fatalf("unexpected copy content %q", b)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	tmp := t.TempDir()
	if err := copyFile(filepath.Join(tmp, "missing"), filepath.Join(tmp, "dst")); err == nil {
		t.Fatal("expected error")
	}
}
