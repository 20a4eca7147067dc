package ports

import (
	"context"

	"github.com/forPelevin/stampcut/internal/types"
)

// VideoTool is the external transcoder capability. Any implementation must
// preserve the contract: non-zero exit or a missing/empty output file after
// a reported success is a failure.
type VideoTool interface {
	// Remux rewrites the container with a lossless stream copy, moving
	// streaming metadata to the front so downstream stages can seek.
	Remux(ctx context.Context, inPath, outPath string) error

	// ExtractFirstFrame writes the first decodable frame as a grayscale
	// still image. A video with zero readable frames is an error.
	ExtractFirstFrame(ctx context.Context, inPath, outImage string) error

	// Probe reports frame count, frame rate and container duration.
	Probe(ctx context.Context, inPath string) (types.ProbeInfo, error)

	// ExtractSegment re-encodes the [start, end] range of the input, where
	// start and end are HH:MM:SS offsets relative to the start of the file.
	ExtractSegment(ctx context.Context, inPath, start, end, outPath string) error
}

// TextRecognizer runs OCR over a still image and returns the raw text.
type TextRecognizer interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}
