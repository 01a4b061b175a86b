package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Sources) == 0 {
		t.Error("expected default sources")
	}
	if len(cfg.Voices) == 0 {
		t.Error("expected default voices")
	}
	if cfg.Summarizer.Model == "" {
		t.Error("expected a default summarization model")
	}
	if cfg.Summarizer.MinLength <= 0 || cfg.Summarizer.MaxLength <= cfg.Summarizer.MinLength {
		t.Errorf("implausible summary bounds: min=%d max=%d",
			cfg.Summarizer.MinLength, cfg.Summarizer.MaxLength)
	}
	if cfg.Narration.ReferenceDir == "" {
		t.Error("expected a default reference audio directory")
	}
	if cfg.Narration.Language != "en" {
		t.Errorf("expected language en, got %s", cfg.Narration.Language)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(cfg.Sources) == 0 {
		t.Error("expected defaults for a missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Extractor = "readability"
	cfg.Narration.Endpoint = "http://tts.local:5002"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Extractor != "readability" {
		t.Errorf("expected readability extractor, got %s", loaded.Extractor)
	}
	if loaded.Narration.Endpoint != "http://tts.local:5002" {
		t.Errorf("endpoint not round-tripped: %s", loaded.Narration.Endpoint)
	}
	if len(loaded.Sources) != len(cfg.Sources) {
		t.Errorf("sources not round-tripped: %d", len(loaded.Sources))
	}
}

func TestAutoPopulateFromEnv(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "hf_abc")
	t.Setenv("COQUI_API_KEY", "cq_def")
	t.Setenv("NEWSBREEZE_TTS_URL", "http://gpu-box:5002")

	cfg := DefaultConfig()
	cfg.AutoPopulateFromEnv()

	if cfg.Summarizer.APIKey != "hf_abc" {
		t.Errorf("summarizer key not populated: %q", cfg.Summarizer.APIKey)
	}
	if cfg.Narration.APIKey != "cq_def" {
		t.Errorf("narration key not populated: %q", cfg.Narration.APIKey)
	}
	if cfg.Narration.Endpoint != "http://gpu-box:5002" {
		t.Errorf("narration endpoint not populated: %q", cfg.Narration.Endpoint)
	}
}

func TestVoiceByName(t *testing.T) {
	cfg := DefaultConfig()

	v, ok := cfg.VoiceByName("Morgan Freeman")
	if !ok {
		t.Fatal("expected Morgan Freeman to be configured")
	}
	if v.ReferenceAudio != "morgan_freeman.wav" {
		t.Errorf("unexpected reference file: %s", v.ReferenceAudio)
	}

	if _, ok := cfg.VoiceByName("Nobody"); ok {
		t.Error("unknown voice should not resolve")
	}
}
