package run

import (
	"encoding/json"
	"errors"
	"testing"

	"claimstats/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []ArtifactEntry {
	return []ArtifactEntry{
		NewArtifactEntry("probability_demo.txt", ArtifactText, []byte("P(ClaimAmount > 2500) ≈ 0.4000\n")),
		NewArtifactEntry("correlation_matrix.csv", ArtifactTable, []byte(",Age\nAge,1\n")),
		NewArtifactEntry("hist_revenue.png", ArtifactFigure, []byte{0x89, 'P', 'N', 'G'}),
	}
}

func TestRunManifest_SortedAndDeterministic(t *testing.T) {
	entries := sampleEntries()
	m1 := NewRunManifest(entries)
	m2 := NewRunManifest([]ArtifactEntry{entries[2], entries[0], entries[1]})

	require.Len(t, m1.Artifacts, 3)
	assert.Equal(t, "correlation_matrix.csv", m1.Artifacts[0].Name)
	assert.Equal(t, "probability_demo.txt", m1.Artifacts[2].Name)
	assert.Equal(t, m1.Fingerprint, m2.Fingerprint, "order of production does not matter")

	j1, err := m1.JSON()
	require.NoError(t, err)
	j2, err := m2.JSON()
	require.NoError(t, err)
	assert.Equal(t, j1, j2)
}

func TestRunManifest_ContentChangesFingerprint(t *testing.T) {
	base := NewRunManifest(sampleEntries())

	changed := sampleEntries()
	changed[0] = NewArtifactEntry("probability_demo.txt", ArtifactText, []byte("P(ClaimAmount > 2500) ≈ 0.5000\n"))
	assert.NotEqual(t, base.Fingerprint, NewRunManifest(changed).Fingerprint)
}

func TestRunManifest_LaterEntryWins(t *testing.T) {
	first := NewArtifactEntry("summary.md", ArtifactDocument, []byte("a"))
	second := NewArtifactEntry("summary.md", ArtifactDocument, []byte("bb"))

	m := NewRunManifest([]ArtifactEntry{first, second})
	require.Len(t, m.Artifacts, 1)

	got, ok := m.Lookup("summary.md")
	require.True(t, ok)
	assert.Equal(t, 2, got.Bytes)

	_, ok = m.Lookup("missing.csv")
	assert.False(t, ok)
}

func TestRunManifest_JSONShape(t *testing.T) {
	data, err := NewRunManifest(sampleEntries()).JSON()
	require.NoError(t, err)

	var decoded struct {
		Artifacts []struct {
			Name   string `json:"name"`
			Kind   string `json:"kind"`
			Bytes  int    `json:"bytes"`
			SHA256 string `json:"sha256"`
		} `json:"artifacts"`
		Fingerprint string `json:"fingerprint"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "figure", decoded.Artifacts[1].Kind)
	assert.Equal(t, 4, decoded.Artifacts[1].Bytes)
	assert.Len(t, decoded.Artifacts[1].SHA256, 64)
	assert.NotContains(t, string(data), "created")
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestRunManifest_Validate(t *testing.T) {
	m := NewRunManifest(sampleEntries())
	require.NoError(t, m.Validate())

	m.Artifacts[0].SHA256 = core.NewHash([]byte("tampered"))
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrValidation))
}
