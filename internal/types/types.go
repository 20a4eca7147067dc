package types

import (
	"errors"
	"fmt"
)

// ProbeInfo is the stream metadata needed to derive a duration.
type ProbeInfo struct {
	FrameCount int64
	FrameRate  float64
	// DurationSec is the container-reported duration, used when the muxer
	// does not report a frame count.
	DurationSec float64
}

// WholeSeconds derives the video duration in whole seconds, preferring
// frame_count/frame_rate over the container duration.
func (p ProbeInfo) WholeSeconds() int {
	if p.FrameCount > 0 && p.FrameRate > 0 {
		return int(float64(p.FrameCount) / p.FrameRate)
	}
	return int(p.DurationSec)
}

// Detection is the wall-clock window read off the repaired video.
type Detection struct {
	Start       string `json:"detected_start"`
	End         string `json:"detected_end"`
	DurationSec int    `json:"duration_seconds"`
}

// Stage identifies the pipeline stage a failure belongs to.
type Stage string

const (
	StageRepair    Stage = "repair"
	StageFrame     Stage = "frame"
	StageRecognize Stage = "recognize"
	StageProbe     Stage = "probe"
	StageExtract   Stage = "extract"
)

// ErrTimeNotDetected is the recoverable outcome when no HH:MM:SS pattern
// can be read off the first frame. The user retries with a clearer video.
var ErrTimeNotDetected = errors.New("could not detect a timestamp in the video frame")

// StageError tags a failure with the stage that produced it so callers can
// name the failing stage in user-facing messages.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// StageOf returns the stage tag of err, if it carries one.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
