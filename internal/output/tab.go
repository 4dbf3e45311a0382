// Package output provides density result formatters.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/inodb/strdensity/internal/density"
)

// resultColumns is the column set shared by all flat writers.
var resultColumns = []string{
	"gene_id",
	"gene_name",
	"total_gene_overlap",
	"gene_density",
	"total_exon_overlap",
	"exon_density",
	"total_intron_overlap",
	"intron_density",
	"str_types",
}

// TabWriter writes density results in tab-delimited format.
type TabWriter struct {
	w *bufio.Writer
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(resultColumns, "\t") + "\n")
	return err
}

// Write writes a single gene result row.
func (tw *TabWriter) Write(r *density.GeneResult) error {
	_, err := tw.w.WriteString(strings.Join(resultFields(r), "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
