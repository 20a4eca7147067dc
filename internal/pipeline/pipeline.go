package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/forPelevin/stampcut/internal/ports"
	"github.com/forPelevin/stampcut/internal/ports/adapters/ffmpeg"
	"github.com/forPelevin/stampcut/internal/ports/adapters/tesseract"
	"github.com/forPelevin/stampcut/internal/usecase"
	"github.com/forPelevin/stampcut/internal/workspace"
)

type Config struct {
	Input   string
	Start   string // requested wall-clock start; empty = detected start
	End     string // requested wall-clock end; empty = detected end
	OutPath string

	WorkDir string

	FFmpegPath    string
	FFprobePath   string
	TesseractPath string

	Logger zerolog.Logger
}

func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.OutPath == "" {
		return errors.New("output path is empty")
	}
	return nil
}

// Run executes one detect-then-extract cycle for the CLI: copy the input
// into a fresh workspace, detect the wall-clock window, cut the requested
// range (defaulting to the full window) and move the clip to cfg.OutPath.
// The workspace is removed on every exit path.
func Run(ctx context.Context, cfg Config) error {
	logger := cfg.Logger

	v := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)
	ocr := tesseract.New(cfg.TesseractPath)
	uc := usecase.New(usecase.Deps{Video: v, OCR: ocr})

	ws, err := workspace.New(cfg.WorkDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Cleanup(); err != nil {
			logger.Warn().Err(err).Msg("workspace cleanup failed")
		}
	}()
	logger.Debug().Str("workspace", ws.Dir()).Msg("workspace ready")

	if err := copyFile(cfg.Input, ws.Input()); err != nil {
		return fmt.Errorf("persist upload: %w", err)
	}

	det, err := uc.Detect(ctx, ws)
	if err != nil {
		return err
	}
	logger.Info().
		Str("start", det.Start).
		Str("end", det.End).
		Int("duration_sec", det.DurationSec).
		Msg("detected window")

	reqStart := cfg.Start
	if reqStart == "" {
		reqStart = det.Start
	}
	reqEnd := cfg.End
	if reqEnd == "" {
		reqEnd = det.End
	}

	if err := uc.Extract(ctx, ws, det, reqStart, reqEnd); err != nil {
		return err
	}

	if err := copyFile(ws.Clip(), cfg.OutPath); err != nil {
		return fmt.Errorf("write output clip: %w", err)
	}
	logger.Info().Str("clip", cfg.OutPath).Msg("clip written")
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.TextRecognizer = (*tesseract.Adapter)(nil)
