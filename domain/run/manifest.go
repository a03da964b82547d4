package run

import (
	"encoding/json"
	"sort"

	"claimstats/domain/core"
)

// ManifestName is the file name of the run manifest
const ManifestName = "manifest.json"

// RunManifest lists every artifact of a report run. It carries no run id or
// timestamps: identical inputs give an identical manifest.
type RunManifest struct {
	Artifacts   []ArtifactEntry `json:"artifacts"`
	Fingerprint core.Hash       `json:"fingerprint"` // hash over name=sha256 pairs
}

// NewRunManifest builds a manifest from entries. Entries are sorted by name
// and a later entry with the same name replaces an earlier one.
func NewRunManifest(entries []ArtifactEntry) *RunManifest {
	byName := make(map[string]ArtifactEntry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}

	artifacts := make([]ArtifactEntry, 0, len(byName))
	hashes := make(map[string]core.Hash, len(byName))
	for name, e := range byName {
		artifacts = append(artifacts, e)
		hashes[name] = e.SHA256
	}
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})

	return &RunManifest{
		Artifacts:   artifacts,
		Fingerprint: core.ComputeContentHash(hashes),
	}
}

// Lookup returns the entry with the given name
func (m *RunManifest) Lookup(name string) (ArtifactEntry, bool) {
	i := sort.Search(len(m.Artifacts), func(i int) bool {
		return m.Artifacts[i].Name >= name
	})
	if i < len(m.Artifacts) && m.Artifacts[i].Name == name {
		return m.Artifacts[i], true
	}
	return ArtifactEntry{}, false
}

// Validate checks that the fingerprint matches the listed artifacts
func (m *RunManifest) Validate() error {
	hashes := make(map[string]core.Hash, len(m.Artifacts))
	for _, e := range m.Artifacts {
		if e.Name == "" {
			return core.NewValidationError("run_manifest", "artifact name cannot be empty")
		}
		hashes[e.Name] = e.SHA256
	}
	if core.ComputeContentHash(hashes) != m.Fingerprint {
		return core.NewValidationError("run_manifest", "fingerprint does not match artifacts")
	}
	return nil
}

// JSON encodes the manifest with two-space indentation and a trailing newline
func (m *RunManifest) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
