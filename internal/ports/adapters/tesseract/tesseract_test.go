package tesseract

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_DefaultBinary(t *testing.T) {
	if got := New("").bin; got != "tesseract" {
		t.Fatalf("unexpected default binary %q", got)
	}
	if got := New("/opt/tesseract/bin/tesseract").bin; got != "/opt/tesseract/bin/tesseract" {
		t.Fatalf("unexpected binary %q", got)
	}
}

func TestRecognize_MissingImage(t *testing.T) {
	a := New("")
	_, err := a.Recognize(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error for missing image")
	}
	if !strings.Contains(err.Error(), "stat image") {
		t.Fatalf("unexpected error %v", err)
	}
}
