package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "stampcut <input>",
		Short:        "Cut a wall-clock range out of a timestamped MP4",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		Long: "stampcut reads the burned-in HH:MM:SS timestamp from the first frame " +
			"of a video, derives the wall-clock window the recording covers and cuts " +
			"the requested range out of it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("start", "", "Wall-clock start (HH:MM:SS), default: detected start")
	root.Flags().String("end", "", "Wall-clock end (HH:MM:SS), default: detected end")
	root.Flags().String("out", "clip.mp4", "Output clip path")
	root.Flags().BoolP("verbose", "v", false, "Debug logging")

	// Tool-path overrides; PATH lookup by default.
	root.PersistentFlags().String("ffmpeg", "", "ffmpeg binary path")
	root.PersistentFlags().String("ffprobe", "", "ffprobe binary path")
	root.PersistentFlags().String("tesseract", "", "tesseract binary path")

	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
