package run

import (
	"claimstats/domain/core"
)

// ArtifactKind classifies a report artifact
type ArtifactKind string

const (
	ArtifactTable    ArtifactKind = "table"
	ArtifactText     ArtifactKind = "text"
	ArtifactFigure   ArtifactKind = "figure"
	ArtifactDocument ArtifactKind = "document"
)

// ArtifactEntry records one written artifact
type ArtifactEntry struct {
	Name   string       `json:"name"`
	Kind   ArtifactKind `json:"kind"`
	Bytes  int          `json:"bytes"`
	SHA256 core.Hash    `json:"sha256"`
}

// NewArtifactEntry hashes data into a manifest entry
func NewArtifactEntry(name string, kind ArtifactKind, data []byte) ArtifactEntry {
	return ArtifactEntry{
		Name:   name,
		Kind:   kind,
		Bytes:  len(data),
		SHA256: core.NewHash(data),
	}
}
