package usecase

import (
	"context"
	"fmt"

	"github.com/forPelevin/stampcut/internal/domain/timecode"
	"github.com/forPelevin/stampcut/internal/domain/window"
	"github.com/forPelevin/stampcut/internal/ports"
	"github.com/forPelevin/stampcut/internal/types"
	"github.com/forPelevin/stampcut/internal/workspace"
)

type Deps struct {
	Video ports.VideoTool
	OCR   ports.TextRecognizer
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

// Detect runs the front half of the pipeline over the uploaded bytes at
// ws.Input(): repair, first-frame capture, recognition, duration probe.
// Repair and probe failures are terminal for the run. A missing frame, a
// recognizer failure, or text with no HH:MM:SS pattern all surface as
// types.ErrTimeNotDetected: the user retries with a clearer timestamp.
func (u Usecase) Detect(ctx context.Context, ws *workspace.Workspace) (types.Detection, error) {
	if err := u.d.Video.Remux(ctx, ws.Input(), ws.Repaired()); err != nil {
		return types.Detection{}, &types.StageError{Stage: types.StageRepair, Err: err}
	}

	if err := u.d.Video.ExtractFirstFrame(ctx, ws.Repaired(), ws.Frame()); err != nil {
		// No readable frame means no timestamp, not a crash.
		return types.Detection{}, &types.StageError{Stage: types.StageFrame, Err: types.ErrTimeNotDetected}
	}

	text, err := u.d.OCR.Recognize(ctx, ws.Frame())
	if err != nil {
		return types.Detection{}, &types.StageError{Stage: types.StageRecognize, Err: types.ErrTimeNotDetected}
	}
	start, ok := timecode.Find(text)
	if !ok {
		return types.Detection{}, &types.StageError{Stage: types.StageRecognize, Err: types.ErrTimeNotDetected}
	}

	// Duration comes from the repaired asset, not the original upload.
	info, err := u.d.Video.Probe(ctx, ws.Repaired())
	if err != nil {
		return types.Detection{}, &types.StageError{Stage: types.StageProbe, Err: err}
	}
	duration := info.WholeSeconds()
	if duration <= 0 {
		return types.Detection{}, &types.StageError{Stage: types.StageProbe, Err: fmt.Errorf("non-positive duration %d", duration)}
	}

	end, err := timecode.Add(start, timecode.Format(duration))
	if err != nil {
		return types.Detection{}, &types.StageError{Stage: types.StageProbe, Err: err}
	}

	return types.Detection{Start: start, End: end, DurationSec: duration}, nil
}

// Extract validates the requested wall-clock range against the detected
// window, converts it to offsets relative to the start of the repaired
// video and cuts the clip into ws.Clip(). A *window.BoundError return is
// recoverable: the caller may resubmit a corrected range without
// re-running detection.
func (u Usecase) Extract(ctx context.Context, ws *workspace.Workspace, det types.Detection, reqStart, reqEnd string) error {
	detected, err := detectedWindow(det)
	if err != nil {
		return &types.StageError{Stage: types.StageExtract, Err: err}
	}

	rs, err := timecode.Parse(reqStart)
	if err != nil {
		return &window.BoundError{Bound: window.BoundLower, Detected: detected, Message: err.Error()}
	}
	re, err := timecode.Parse(reqEnd)
	if err != nil {
		return &window.BoundError{Bound: window.BoundUpper, Detected: detected, Message: err.Error()}
	}

	requested := window.Window{Start: rs, End: re}
	if err := window.Validate(detected, requested); err != nil {
		return err
	}

	rel := window.Relative(detected, requested)
	if err := u.d.Video.ExtractSegment(ctx, ws.Repaired(),
		timecode.Format(rel.Start), timecode.Format(rel.End), ws.Clip()); err != nil {
		return &types.StageError{Stage: types.StageExtract, Err: err}
	}
	return nil
}

func detectedWindow(det types.Detection) (window.Window, error) {
	ds, err := timecode.Parse(det.Start)
	if err != nil {
		return window.Window{}, fmt.Errorf("detected start: %w", err)
	}
	de, err := timecode.Parse(det.End)
	if err != nil {
		return window.Window{}, fmt.Errorf("detected end: %w", err)
	}
	return window.Window{Start: ds, End: de}, nil
}
