//go:build integration

package itest

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/forPelevin/stampcut/internal/pipeline"
)

// TestE2E cuts a one-minute range out of a synthetic recording whose first
// frame carries a burned-in 10:15:00 timestamp. Requires ffmpeg, ffprobe
// and tesseract on PATH.
func TestE2E(t *testing.T) {
	for _, bin := range []string{"ffmpeg", "ffprobe", "tesseract"} {
		if _, err := exec.LookPath(bin); err != nil {
			t.Skipf("%s not installed", bin)
		}
	}

	tmp := t.TempDir()
	in := filepath.Join(tmp, "input.mp4")

	// Two minutes of black video with the wall clock drawn top-left.
	ff := exec.Command("ffmpeg",
		"-y",
		"-f", "lavfi",
		"-i", "color=c=black:s=1280x720:d=120:r=30",
		"-vf", `drawtext=text='10\:15\:00':fontsize=64:fontcolor=white:x=40:y=40`,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		in,
	)
	if b, err := ff.CombinedOutput(); err != nil {
		t.Fatalf("ffmpeg fixture failed: %v\n%s", err, string(b))
	}

	out := filepath.Join(tmp, "clip.mp4")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := pipeline.Config{
		Input:   in,
		Start:   "10:15:30",
		End:     "10:16:30",
		OutPath: out,
		Logger:  zerolog.Nop(),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	if err := pipeline.Run(ctx, cfg); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	sec, err := probeDurationSeconds(out)
	if err != nil {
		t.Fatal(err)
	}
	if sec < 59 || sec > 61 {
		t.Fatalf("expected a ~60s clip, got %.2fs", sec)
	}
}
