package report

import (
	"context"

	domainReport "claimstats/domain/report"
	"claimstats/domain/run"
	"claimstats/ports"
)

// ManifestRecorder wraps a ReportWriter and records every successful write
// for the run manifest.
type ManifestRecorder struct {
	next    ports.ReportWriter
	entries []run.ArtifactEntry
}

// NewManifestRecorder creates a recorder in front of next
func NewManifestRecorder(next ports.ReportWriter) *ManifestRecorder {
	return &ManifestRecorder{next: next}
}

// WriteTable forwards the table and records its CSV encoding
func (r *ManifestRecorder) WriteTable(ctx context.Context, name string, table domainReport.Table) error {
	if err := r.next.WriteTable(ctx, name, table); err != nil {
		return err
	}
	data, err := table.CSV()
	if err != nil {
		return err
	}
	r.record(name, run.ArtifactTable, data)
	return nil
}

// WriteText forwards and records a text report
func (r *ManifestRecorder) WriteText(ctx context.Context, name string, text string) error {
	if err := r.next.WriteText(ctx, name, text); err != nil {
		return err
	}
	r.record(name, run.ArtifactText, []byte(text))
	return nil
}

// WriteFigure forwards and records a figure
func (r *ManifestRecorder) WriteFigure(ctx context.Context, name string, png []byte) error {
	if err := r.next.WriteFigure(ctx, name, png); err != nil {
		return err
	}
	r.record(name, run.ArtifactFigure, png)
	return nil
}

// WriteDocument forwards and records a document
func (r *ManifestRecorder) WriteDocument(ctx context.Context, name string, data []byte) error {
	if err := r.next.WriteDocument(ctx, name, data); err != nil {
		return err
	}
	r.record(name, run.ArtifactDocument, data)
	return nil
}

func (r *ManifestRecorder) record(name string, kind run.ArtifactKind, data []byte) {
	r.entries = append(r.entries, run.NewArtifactEntry(name, kind, data))
}

// Manifest returns the manifest of everything recorded so far
func (r *ManifestRecorder) Manifest() *run.RunManifest {
	return run.NewRunManifest(r.entries)
}

// WriteManifest writes the manifest through the wrapped writer. The
// manifest does not list itself.
func (r *ManifestRecorder) WriteManifest(ctx context.Context) (*run.RunManifest, error) {
	manifest := r.Manifest()
	data, err := manifest.JSON()
	if err != nil {
		return nil, err
	}
	if err := r.next.WriteDocument(ctx, run.ManifestName, data); err != nil {
		return nil, err
	}
	return manifest, nil
}
