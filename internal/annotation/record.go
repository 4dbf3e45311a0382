// Package annotation provides GTF gene and exon annotation loading.
package annotation

import "strings"

// Placeholder values used when the GTF attribute column carries no
// gene_name or gene_id tag. Missing tags never abort a run.
const (
	UnknownGene = "Unknown_Gene"
	UnknownID   = "Unknown_ID"
)

// Gene represents a gene annotation interval.
type Gene struct {
	Chrom string // Chromosome
	Start int64  // Gene start position (1-based)
	End   int64  // Gene end position (1-based, inclusive)
	ID    string // Gene identifier (e.g., ENSG00000133703), UnknownID if absent
	Name  string // Gene symbol (e.g., KRAS), UnknownGene if absent
}

// Exon represents an exon annotation interval. Exons carry no gene
// reference: the gene association is derived by coordinate containment
// at density-computation time.
type Exon struct {
	Chrom string
	Start int64
	End   int64
}

// Contains returns true if the given position is within the gene boundaries.
func (g *Gene) Contains(pos int64) bool {
	return pos >= g.Start && pos <= g.End
}

// Length returns the inclusive interval length of the gene.
func (g *Gene) Length() int64 {
	return g.End - g.Start + 1
}

// Length returns the inclusive interval length of the exon.
func (e *Exon) Length() int64 {
	return e.End - e.Start + 1
}

// parseAttributes parses the GTF attribute column.
// Format: key "value"; key "value"; ...
func parseAttributes(attrStr string) map[string]string {
	attrs := make(map[string]string)

	parts := strings.Split(attrStr, ";")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Find the first space to separate key from value
		idx := strings.Index(part, " ")
		if idx == -1 {
			continue
		}

		key := part[:idx]
		value := strings.TrimSpace(part[idx+1:])

		// Remove quotes
		value = strings.Trim(value, "\"")

		attrs[key] = value
	}

	return attrs
}

// GeneInfo extracts the gene name and gene ID from a GTF attribute string.
// Either tag may be absent; absence yields the Unknown placeholders.
func GeneInfo(attrStr string) (name, id string) {
	attrs := parseAttributes(attrStr)

	name = attrs["gene_name"]
	if name == "" {
		name = UnknownGene
	}

	id = attrs["gene_id"]
	if id == "" {
		id = UnknownID
	}

	return name, id
}
