package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/forPelevin/stampcut/internal/config"
	"github.com/forPelevin/stampcut/internal/logging"
	"github.com/forPelevin/stampcut/internal/ports/adapters/ffmpeg"
	"github.com/forPelevin/stampcut/internal/ports/adapters/tesseract"
	"github.com/forPelevin/stampcut/internal/server"
	"github.com/forPelevin/stampcut/internal/usecase"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Run the HTTP clipping service",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         serve,
	}
	cmd.Flags().String("config", "", "YAML config file path")
	cmd.Flags().BoolP("verbose", "v", false, "Debug logging")
	return cmd
}

func serve(cmd *cobra.Command, _ []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logging.Init(verbose)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Flag overrides on top of file + env.
	if v, _ := cmd.Flags().GetString("ffmpeg"); v != "" {
		cfg.FFmpegPath = v
	}
	if v, _ := cmd.Flags().GetString("ffprobe"); v != "" {
		cfg.FFprobePath = v
	}
	if v, _ := cmd.Flags().GetString("tesseract"); v != "" {
		cfg.TesseractPath = v
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	uc := usecase.New(usecase.Deps{
		Video: ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath),
		OCR:   tesseract.New(cfg.TesseractPath),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(uc, cfg, logging.WithComponent("server")).Run(ctx)
}
