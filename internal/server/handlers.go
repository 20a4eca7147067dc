package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/forPelevin/stampcut/internal/domain/window"
	"github.com/forPelevin/stampcut/internal/types"
	"github.com/forPelevin/stampcut/internal/workspace"
)

type uploadResponse struct {
	ID            string `json:"id"`
	DetectedStart string `json:"detected_start"`
	DetectedEnd   string `json:"detected_end"`
	DurationSec   int    `json:"duration_seconds"`
}

type clipRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type clipResponse struct {
	Clip string `json:"clip"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn().Err(err).Msg("write response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string, extra map[string]any) {
	body := map[string]any{"error": msg}
	for k, v := range extra {
		body[k] = v
	}
	s.respondJSON(w, status, body)
}

func (s *Server) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "stampcut",
		"time":    time.Now().UTC(),
	})
}

// UploadVideo persists the uploaded bytes into a fresh workspace, runs
// repair + detection and answers with the detected window as editable
// defaults for the clip request.
func (s *Server) UploadVideo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, _, err := r.FormFile("video")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "video file is required: "+err.Error(), nil)
		return
	}
	defer file.Close()

	ws, err := workspace.New(s.workDir)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	if err := persistUpload(file, ws.Input()); err != nil {
		_ = ws.Cleanup()
		s.respondError(w, http.StatusInternalServerError, "persist upload: "+err.Error(), nil)
		return
	}

	det, err := s.uc.Detect(r.Context(), ws)
	if err != nil {
		_ = ws.Cleanup()
		s.respondDetectError(w, err)
		return
	}

	sess := s.store.create(ws, det)
	s.logger.Info().
		Str("session", sess.ID).
		Str("start", det.Start).
		Str("end", det.End).
		Msg("video uploaded and window detected")

	s.respondJSON(w, http.StatusCreated, uploadResponse{
		ID:            sess.ID,
		DetectedStart: det.Start,
		DetectedEnd:   det.End,
		DurationSec:   det.DurationSec,
	})
}

func (s *Server) respondDetectError(w http.ResponseWriter, err error) {
	stage, _ := types.StageOf(err)
	if errors.Is(err, types.ErrTimeNotDetected) {
		s.respondError(w, http.StatusUnprocessableEntity,
			"could not detect a timestamp in the video frame, try a clearer timestamp",
			map[string]any{"stage": stage})
		return
	}
	s.respondError(w, http.StatusInternalServerError, err.Error(), map[string]any{"stage": stage})
}

// CreateClip validates the requested wall-clock range and cuts the clip.
// A rejected range leaves the session intact: the client corrects the
// bounds and retries without re-uploading.
func (s *Server) CreateClip(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.get(mux.Vars(r)["id"])
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}

	var req clipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if err := s.uc.Extract(r.Context(), sess.WS, sess.Detection, req.Start, req.End); err != nil {
		var be *window.BoundError
		if errors.As(err, &be) {
			s.respondError(w, http.StatusUnprocessableEntity, be.Message, map[string]any{
				"bound":          string(be.Bound),
				"detected_start": sess.Detection.Start,
				"detected_end":   sess.Detection.End,
			})
			return
		}
		stage, _ := types.StageOf(err)
		s.respondError(w, http.StatusInternalServerError, err.Error(), map[string]any{"stage": stage})
		return
	}
	sess.setClip()

	s.logger.Info().
		Str("session", sess.ID).
		Str("start", req.Start).
		Str("end", req.End).
		Msg("clip extracted")
	s.respondJSON(w, http.StatusOK, clipResponse{
		Clip: "/api/v1/videos/" + sess.ID + "/clip",
	})
}

// GetClip serves the extracted clip bytes.
func (s *Server) GetClip(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.get(mux.Vars(r)["id"])
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}

	sess.Lock()
	ready := sess.clipReady()
	clipPath := sess.WS.Clip()
	sess.Unlock()

	if !ready {
		s.respondError(w, http.StatusNotFound, "no clip extracted for this session yet", nil)
		return
	}

	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Disposition", `attachment; filename="video_segment.mp4"`)
	http.ServeFile(w, r, clipPath)
}

func (s *Server) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.remove(id); err != nil {
		if errors.Is(err, errSessionNotFound) {
			s.respondError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	s.logger.Info().Str("session", id).Msg("session removed")
	w.WriteHeader(http.StatusNoContent)
}

func persistUpload(src io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
