// Package voice synthesizes spoken narration through a voice-cloning
// model served over HTTP, degrading to placeholder files whenever the
// backend is missing or fails.
package voice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"newsbreeze/internal/config"
	"newsbreeze/internal/logging"
)

const (
	probeTimeout = 3 * time.Second
	synthTimeout = 180 * time.Second

	// maxAudioBytes caps a synthesis response. XTTS output for a short
	// summary is well under this.
	maxAudioBytes = 64 << 20
)

// Engine converts text to narrated audio. Synthesize never fails outward:
// every call returns an artifact whose file exists, possibly a placeholder
// explaining what went wrong.
type Engine struct {
	cfg    config.NarrationConfig
	voices []config.Voice
	client *http.Client

	availOnce sync.Once
	avail     bool
}

// NewEngine creates an Engine for the configured TTS server and voice
// profiles. Backend availability is probed once, on first use.
func NewEngine(cfg config.NarrationConfig, voices []config.Voice) *Engine {
	return &Engine{
		cfg:    cfg,
		voices: voices,
		client: &http.Client{Timeout: synthTimeout},
	}
}

// Available reports whether the TTS server answers at the configured
// endpoint. The probe runs once per Engine; callers can check it at
// startup and surface the result in the UI.
func (e *Engine) Available() bool {
	e.availOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.cfg.Endpoint, nil)
		if err != nil {
			logging.Warn("voice: bad endpoint", "endpoint", e.cfg.Endpoint, "error", err)
			return
		}
		resp, err := e.client.Do(req)
		if err != nil {
			logging.Warn("voice: synthesis backend not reachable", "endpoint", e.cfg.Endpoint, "error", err)
			return
		}
		resp.Body.Close()
		e.avail = true
		logging.Info("voice: synthesis backend available", "endpoint", e.cfg.Endpoint, "model", e.cfg.Model)
	})
	return e.avail
}

// Synthesize narrates text in the named voice and returns the resulting
// WAV artifact. Language is fixed by configuration. A missing backend or
// a failed synthesis yields a placeholder artifact, never an error.
func (e *Engine) Synthesize(ctx context.Context, text, voiceName string) *Artifact {
	if !e.Available() {
		msg := fmt.Sprintf("Voice synthesis is not available: no TTS server at %s. Start a Coqui TTS server with the %s model to enable narration.",
			e.cfg.Endpoint, e.cfg.Model)
		return e.placeholder("backend unavailable", msg)
	}

	ref := e.referencePath(voiceName)
	audio, err := e.requestTTS(ctx, text, ref)
	if err != nil {
		logging.Error("voice: synthesis failed", "voice", voiceName, "error", err)
		return e.placeholder("synthesis failed: "+err.Error(),
			"Voice synthesis failed: "+err.Error())
	}

	path, err := writeTemp(audio)
	if err != nil {
		logging.Error("voice: failed to write audio", "error", err)
		return e.placeholder("write failed: "+err.Error(),
			"Voice synthesis failed: could not write audio output.")
	}

	if e.cfg.Normalize {
		if err := normalizeWAV(path); err != nil {
			// Keep the unnormalized audio; it is still playable.
			logging.Warn("voice: normalization skipped", "path", path, "error", err)
		}
	}

	logging.Info("voice: narration generated", "voice", voiceName, "path", path, "bytes", len(audio))
	return &Artifact{Path: path}
}

// requestTTS performs one synthesis call against the TTS server. With a
// reference sample the server runs cross-voice cloning conditioned on it;
// without one it uses its default voice.
func (e *Engine) requestTTS(ctx context.Context, text, referenceAudio string) ([]byte, error) {
	q := url.Values{}
	q.Set("text", text)
	q.Set("language_id", e.cfg.Language)
	if referenceAudio != "" {
		q.Set("speaker_wav", referenceAudio)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.cfg.Endpoint+"/api/tts?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if e.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}

	return audio, nil
}

// referencePath resolves a voice name to its reference sample on disk.
// Unknown voices and missing files both degrade to the default voice.
func (e *Engine) referencePath(voiceName string) string {
	var file string
	for _, v := range e.voices {
		if v.Name == voiceName {
			file = v.ReferenceAudio
			break
		}
	}
	if file == "" {
		logging.Info("voice: no reference sample configured", "voice", voiceName)
		return ""
	}

	path := filepath.Join(e.cfg.ReferenceDir, file)
	if _, err := os.Stat(path); err != nil {
		logging.Info("voice: reference sample not on disk, using default voice",
			"voice", voiceName, "path", path)
		return ""
	}
	return path
}

// placeholder writes a small explanatory text payload into a .wav-suffixed
// temp file so the caller always gets an existing, non-empty path.
func (e *Engine) placeholder(reason, message string) *Artifact {
	path, err := writeTemp([]byte(message))
	if err != nil {
		logging.Error("voice: failed to create placeholder", "error", err)
		return &Artifact{Degraded: true, Reason: reason}
	}
	logging.Info("voice: created placeholder", "path", path, "reason", reason)
	return &Artifact{Path: path, Degraded: true, Reason: reason}
}

func writeTemp(data []byte) (string, error) {
	f, err := os.CreateTemp("", "newsbreeze-*.wav")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
