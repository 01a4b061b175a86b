package voice

import (
	"os"

	"newsbreeze/internal/logging"
)

// Artifact is a synthesized (or placeholder) audio file on temporary
// storage. The caller owns disposal: Close deletes the file unless Keep
// was called first, so no path leaks on early returns.
//
// When Degraded is set the file is a small text payload, not real audio;
// callers should check before handing it to a player.
type Artifact struct {
	Path     string
	Degraded bool
	Reason   string

	kept bool
}

// Keep marks the file as owned by the caller and returns its path.
// Close becomes a no-op afterwards.
func (a *Artifact) Keep() string {
	a.kept = true
	return a.Path
}

// Close removes the backing file unless it was kept.
func (a *Artifact) Close() error {
	if a == nil || a.kept || a.Path == "" {
		return nil
	}
	if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
		logging.Warn("voice: failed to remove artifact", "path", a.Path, "error", err)
		return err
	}
	return nil
}
