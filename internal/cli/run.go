package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/forPelevin/stampcut/internal/logging"
	"github.com/forPelevin/stampcut/internal/pipeline"
)

func run(cmd *cobra.Command, input string) error {
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	out, _ := cmd.Flags().GetString("out")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logging.Init(verbose)

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := pipeline.Config{
		Input:   absIn,
		Start:   start,
		End:     end,
		OutPath: out,

		FFmpegPath:    toolPath(cmd, "ffmpeg", "STAMPCUT_FFMPEG"),
		FFprobePath:   toolPath(cmd, "ffprobe", "STAMPCUT_FFPROBE"),
		TesseractPath: toolPath(cmd, "tesseract", "STAMPCUT_TESSERACT"),

		Logger: logging.WithComponent("pipeline"),
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(ctx, cfg)
}

// toolPath resolves an external binary path: flag wins over env, empty
// means PATH lookup.
func toolPath(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return getenvDefault(env, "")
}
