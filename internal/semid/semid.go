// Package semid derives stable semantic identifiers from free-text concept
// and topic labels, so attempt history recorded under slightly different
// spellings ("Distance" vs " distance ") aggregates under one key.
package semid

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// IDLength is the fixed length of every semantic identifier.
const IDLength = 12

// ErrEmptyLabel is returned when a label is empty after normalization.
var ErrEmptyLabel = errors.New("semid: label must be a non-empty string")

// StableID returns the deterministic semantic identifier for a label.
// Normalization trims whitespace and lowercases before hashing, so labels
// that differ only in case or padding map to the same identifier. Pure:
// the same normalized input always yields the same output.
func StableID(label string) (string, error) {
	norm := Normalize(label)
	if norm == "" {
		return "", ErrEmptyLabel
	}
	sum := sha256.Sum256([]byte(norm))
	return hex.EncodeToString(sum[:])[:IDLength], nil
}

// Normalize applies the canonical label normalization: trim, lowercase.
func Normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// MapLabels resolves a set of labels to their semantic identifiers.
// Labels that are empty after normalization are omitted rather than
// failing the whole batch; upstream taxonomies routinely contain blanks.
func MapLabels(labels []string) map[string]string {
	ids := make(map[string]string, len(labels))
	for _, l := range labels {
		id, err := StableID(l)
		if err != nil {
			continue
		}
		ids[l] = id
	}
	return ids
}
