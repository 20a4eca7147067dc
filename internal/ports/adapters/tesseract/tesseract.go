package tesseract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

type Adapter struct {
	bin string
}

func New(binPath string) *Adapter {
	if binPath == "" {
		binPath = "tesseract"
	}
	return &Adapter{bin: binPath}
}

// Recognize runs tesseract over the image in single-block mode (psm 6,
// "assume a single uniform block of text") and returns the raw text.
func (a *Adapter) Recognize(ctx context.Context, imagePath string) (string, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	}
	cmd := exec.CommandContext(ctx, a.bin,
		imagePath,
		"stdout",
		"--psm", "6",
	)
	b, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("tesseract failed: %w\n%s", err, string(ee.Stderr))
		}
		return "", fmt.Errorf("tesseract failed: %w", err)
	}
	return string(b), nil
}
