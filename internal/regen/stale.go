package regen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Reason explains a staleness decision.
type Reason string

const (
	ReasonFresh   Reason = "fresh"
	ReasonMissing Reason = "missing"
	ReasonForced  Reason = "forced"
	ReasonStale   Reason = "stale"
)

// Stale reports whether the reason calls for regeneration.
func (r Reason) Stale() bool {
	return r != ReasonFresh
}

// Evaluate decides whether artifact must be regenerated from source.
// Only a source newer by at least a whole second makes an existing artifact
// stale; edits within the artifact's second count as fresh.
func Evaluate(source, artifact string, force bool) (Reason, error) {
	srcInfo, err := os.Stat(source)
	if err != nil {
		return "", fmt.Errorf("stat source: %w", err)
	}

	artInfo, err := os.Stat(artifact)
	if errors.Is(err, fs.ErrNotExist) {
		return ReasonMissing, nil
	}
	if err != nil {
		return "", fmt.Errorf("stat artifact: %w", err)
	}

	if force {
		return ReasonForced, nil
	}
	if srcInfo.ModTime().Unix() > artInfo.ModTime().Unix() {
		return ReasonStale, nil
	}
	return ReasonFresh, nil
}

// NeedsRegeneration is Evaluate reduced to a yes/no answer.
func NeedsRegeneration(source, artifact string, force bool) (bool, error) {
	reason, err := Evaluate(source, artifact, force)
	if err != nil {
		return false, err
	}
	return reason.Stale(), nil
}
