package voice

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// normalizeTarget leaves a little headroom below full scale.
const normalizeTarget = 0.95

// normalizeWAV raises the peak amplitude of a WAV file in place. Files
// that are not decodable WAV (placeholders included) return an error and
// are left untouched.
func normalizeWAV(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	dec := wav.NewDecoder(in)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		in.Close()
		return fmt.Errorf("decode: %w", err)
	}
	bitDepth := int(dec.BitDepth)
	in.Close()

	if buf == nil || len(buf.Data) == 0 {
		return fmt.Errorf("no audio samples")
	}
	if bitDepth == 0 {
		bitDepth = 16
	}

	peak := peakOf(buf)
	if peak == 0 {
		return fmt.Errorf("silent audio")
	}

	limit := (1 << (bitDepth - 1)) - 1
	gain := normalizeTarget * float64(limit) / float64(peak)
	if gain <= 1.0 {
		return nil
	}
	for i, s := range buf.Data {
		buf.Data[i] = int(float64(s) * gain)
	}

	// Encode to a sibling temp file and swap, so a failed encode cannot
	// destroy the original audio.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".norm-*.wav")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	enc := wav.NewEncoder(tmp, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("finalize: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace: %w", err)
	}
	return nil
}

func peakOf(buf *audio.IntBuffer) int {
	peak := 0
	for _, s := range buf.Data {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}
