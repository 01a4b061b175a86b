package voice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeTestWAV(t *testing.T, path string, samples []int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           samples,
		SourceBitDepth: 16,
	}
	enc := wav.NewEncoder(f, 8000, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func readPeak(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return peakOf(buf)
}

func TestNormalizeRaisesQuietAudio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.wav")
	writeTestWAV(t, path, []int{100, -500, 1000, -1000, 250})

	if err := normalizeWAV(path); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	peak := readPeak(t, path)
	if peak < 31000 || peak > 32767 {
		t.Errorf("expected peak near full scale, got %d", peak)
	}
}

func TestNormalizeLeavesLoudAudioAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loud.wav")
	samples := []int{32000, -32000, 16000}
	writeTestWAV(t, path, samples)

	if err := normalizeWAV(path); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if peak := readPeak(t, path); peak != 32000 {
		t.Errorf("expected audio untouched at peak 32000, got %d", peak)
	}
}

func TestNormalizeRejectsNonAudio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placeholder.wav")
	if err := os.WriteFile(path, []byte("not audio"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := normalizeWAV(path); err == nil {
		t.Fatal("expected error for non-audio payload")
	}

	// The original file stays intact for the caller.
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "not audio" {
		t.Error("failed normalization must leave the file untouched")
	}
}

func TestNormalizeRejectsSilence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")
	writeTestWAV(t, path, []int{0, 0, 0, 0})

	if err := normalizeWAV(path); err == nil {
		t.Fatal("expected error for silent audio")
	}
}
