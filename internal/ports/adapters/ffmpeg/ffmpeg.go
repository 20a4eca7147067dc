package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/forPelevin/stampcut/internal/types"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

// Remux stream-copies the input into a fresh container with the moov atom
// at the front. No re-encode happens here.
func (a *Adapter) Remux(ctx context.Context, inPath, outPath string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inPath,
		"-c", "copy",
		"-movflags", "+faststart",
		outPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg remux: %w\n%s", err, string(b))
	}
	return requireNonEmpty(outPath, "remuxed video")
}

// ExtractFirstFrame grabs the first decodable frame as a grayscale PNG.
// Grayscale improves OCR robustness on burned-in timestamps.
func (a *Adapter) ExtractFirstFrame(ctx context.Context, inPath, outImage string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inPath,
		"-vf", "format=gray",
		"-frames:v", "1",
		outImage,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract frame: %w\n%s", err, string(b))
	}
	return requireNonEmpty(outImage, "frame image")
}

func (a *Adapter) Probe(ctx context.Context, inPath string) (types.ProbeInfo, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return types.ProbeInfo{}, fmt.Errorf("ffprobe: %w\n%s", err, string(b))
	}

	var probe probeResult
	if err := json.Unmarshal(b, &probe); err != nil {
		return types.ProbeInfo{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	var info types.ProbeInfo
	if dur, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
		info.DurationSec = dur
	}
	for _, s := range probe.Streams {
		if s.CodecType != "video" {
			continue
		}
		if n, err := strconv.ParseInt(s.NbFrames, 10, 64); err == nil {
			info.FrameCount = n
		}
		info.FrameRate = parseFrameRate(s.RFrameRate)
		break
	}
	if info.FrameRate == 0 && info.DurationSec == 0 {
		return types.ProbeInfo{}, fmt.Errorf("ffprobe: no usable duration in %s", inPath)
	}
	return info, nil
}

// ExtractSegment re-encodes the requested range. Stream copy is not an
// option here: cut points generally fall between keyframes.
func (a *Adapter) ExtractSegment(ctx context.Context, inPath, start, end, outPath string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inPath,
		"-ss", start,
		"-to", end,
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-c:a", "aac",
		"-b:a", "128k",
		"-movflags", "+faststart",
		outPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract segment: %w\n%s", err, string(b))
	}
	return requireNonEmpty(outPath, "output clip")
}

// requireNonEmpty guards against the tool exiting zero while writing
// nothing (silent truncation).
func requireNonEmpty(path, what string) error {
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s is missing after a reported success: %w", what, err)
	}
	if st.Size() == 0 {
		return fmt.Errorf("%s is empty after a reported success", what)
	}
	return nil
}

// parseFrameRate parses ffprobe's fraction form, e.g. "30000/1001".
func parseFrameRate(s string) float64 {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}

// probeResult matches the ffprobe JSON output shape.
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		NbFrames   string `json:"nb_frames"`
		RFrameRate string `json:"r_frame_rate"`
	} `json:"streams"`
}
