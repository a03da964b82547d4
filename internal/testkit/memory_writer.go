package testkit

import (
	"context"
	"sort"

	"claimstats/domain/report"
)

// MemoryWriter is a ReportWriter that keeps artifacts in memory
type MemoryWriter struct {
	Tables    map[string]report.Table
	Texts     map[string]string
	Figures   map[string][]byte
	Documents map[string][]byte
	order     []string
	FailOn    string // name whose write returns ErrInjected
}

// NewMemoryWriter creates an empty in-memory writer
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{
		Tables:    map[string]report.Table{},
		Texts:     map[string]string{},
		Figures:   map[string][]byte{},
		Documents: map[string][]byte{},
	}
}

func (w *MemoryWriter) check(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.FailOn != "" && name == w.FailOn {
		return ErrInjected
	}
	w.order = append(w.order, name)
	return nil
}

// WriteTable stores a table
func (w *MemoryWriter) WriteTable(ctx context.Context, name string, table report.Table) error {
	if err := w.check(ctx, name); err != nil {
		return err
	}
	w.Tables[name] = table
	return nil
}

// WriteText stores a text report
func (w *MemoryWriter) WriteText(ctx context.Context, name string, text string) error {
	if err := w.check(ctx, name); err != nil {
		return err
	}
	w.Texts[name] = text
	return nil
}

// WriteFigure stores an encoded figure
func (w *MemoryWriter) WriteFigure(ctx context.Context, name string, png []byte) error {
	if err := w.check(ctx, name); err != nil {
		return err
	}
	w.Figures[name] = png
	return nil
}

// WriteDocument stores a document
func (w *MemoryWriter) WriteDocument(ctx context.Context, name string, data []byte) error {
	if err := w.check(ctx, name); err != nil {
		return err
	}
	w.Documents[name] = data
	return nil
}

// Order returns artifact names in write order
func (w *MemoryWriter) Order() []string {
	return append([]string(nil), w.order...)
}

// Names returns every stored artifact name, sorted
func (w *MemoryWriter) Names() []string {
	var names []string
	for n := range w.Tables {
		names = append(names, n)
	}
	for n := range w.Texts {
		names = append(names, n)
	}
	for n := range w.Figures {
		names = append(names, n)
	}
	for n := range w.Documents {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
