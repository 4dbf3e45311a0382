package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/inodb/strdensity/internal/density"
)

// CSVWriter writes density results in comma-separated format.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a new CSV writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the header line.
func (cw *CSVWriter) WriteHeader() error {
	return cw.w.Write(resultColumns)
}

// Write writes a single gene result row.
func (cw *CSVWriter) Write(r *density.GeneResult) error {
	return cw.w.Write(resultFields(r))
}

// Flush flushes any buffered data to the underlying writer.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

// resultFields renders one gene result in column order. Densities are
// already rounded by the engine; formatting uses the shortest exact
// representation of the rounded value.
func resultFields(r *density.GeneResult) []string {
	return []string{
		r.GeneID,
		r.GeneName,
		strconv.FormatInt(r.TotalGeneOverlap, 10),
		strconv.FormatFloat(r.GeneDensity, 'f', -1, 64),
		strconv.FormatInt(r.TotalExonOverlap, 10),
		strconv.FormatFloat(r.ExonDensity, 'f', -1, 64),
		strconv.FormatInt(r.TotalIntronOverlap, 10),
		strconv.FormatFloat(r.IntronDensity, 'f', -1, 64),
		r.STRTypesString(),
	}
}
