package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	domainReport "claimstats/domain/report"
	"claimstats/internal"
	"claimstats/internal/errors"
)

// FileSystemWriter writes report artifacts as flat files. Directories are
// created on first use and existing files are overwritten.
type FileSystemWriter struct {
	figuresDir string
	outputDir  string
	logger     *internal.Logger
}

// NewFileSystemWriter creates a writer rooted at the given directories
func NewFileSystemWriter(figuresDir, outputDir string, logger *internal.Logger) *FileSystemWriter {
	return &FileSystemWriter{
		figuresDir: figuresDir,
		outputDir:  outputDir,
		logger:     logger,
	}
}

// WriteTable writes table as CSV to the output directory
func (w *FileSystemWriter) WriteTable(ctx context.Context, name string, table domainReport.Table) error {
	data, err := table.CSV()
	if err != nil {
		return errors.OutputError(fmt.Sprintf("failed to encode %s", name), err)
	}
	return w.write(ctx, w.outputDir, name, data)
}

// WriteText writes text verbatim to the output directory
func (w *FileSystemWriter) WriteText(ctx context.Context, name string, text string) error {
	return w.write(ctx, w.outputDir, name, []byte(text))
}

// WriteFigure writes an encoded image to the figures directory
func (w *FileSystemWriter) WriteFigure(ctx context.Context, name string, png []byte) error {
	return w.write(ctx, w.figuresDir, name, png)
}

// WriteDocument writes an opaque document to the output directory
func (w *FileSystemWriter) WriteDocument(ctx context.Context, name string, data []byte) error {
	return w.write(ctx, w.outputDir, name, data)
}

func (w *FileSystemWriter) write(ctx context.Context, dir, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.OutputError(fmt.Sprintf("cannot create directory %s", dir), err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.OutputError(fmt.Sprintf("cannot write %s", path), err)
	}
	w.logger.Debug("Wrote %s (%d bytes)", path, len(data))
	return nil
}
