package annotation

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Annotation holds the gene and exon records loaded from a GTF file,
// in file order.
type Annotation struct {
	Genes []*Gene
	Exons []*Exon
}

// GTFLoader loads gene and exon annotations from GTF files.
type GTFLoader struct {
	path string
}

// NewGTFLoader creates a new GTF loader.
func NewGTFLoader(path string) *GTFLoader {
	return &GTFLoader{path: path}
}

// Load reads the GTF file and returns all gene and exon records.
// Rows with other feature types are ignored. Structural problems
// (missing file, empty file, bad coordinates) are fatal.
func (l *GTFLoader) Load() (*Annotation, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open GTF file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(l.path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	ann, err := l.parse(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return ann, nil
}

// parse parses GTF content and collects gene and exon records.
func (l *GTFLoader) parse(reader io.Reader) (*Annotation, error) {
	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	ann := &Annotation{}
	rows := 0
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip comments and empty lines
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		chrom, feature, start, end, attrs, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		rows++

		switch feature {
		case "gene":
			name, id := GeneInfo(attrs)
			ann.Genes = append(ann.Genes, &Gene{
				Chrom: chrom,
				Start: start,
				End:   end,
				ID:    id,
				Name:  name,
			})
		case "exon":
			ann.Exons = append(ann.Exons, &Exon{
				Chrom: chrom,
				Start: start,
				End:   end,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan GTF: %w", err)
	}

	if rows == 0 {
		return nil, fmt.Errorf("empty or invalid GTF file")
	}

	return ann, nil
}

// parseLine parses a single GTF line into its interval fields.
func parseLine(line string) (chrom, feature string, start, end int64, attrs string, err error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 9 {
		return "", "", 0, 0, "", fmt.Errorf("invalid GTF line: expected 9 fields, got %d", len(fields))
	}

	start, err = strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return "", "", 0, 0, "", fmt.Errorf("parse start: %w", err)
	}

	end, err = strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return "", "", 0, 0, "", fmt.Errorf("parse end: %w", err)
	}

	return normalizeChrom(fields[0]), fields[2], start, end, fields[8], nil
}

// normalizeChrom normalizes chromosome names by removing the "chr" prefix.
// This keeps GTF and BED sources consistent (GENCODE uses "chr1", repeat
// catalogs often use "1").
func normalizeChrom(chrom string) string {
	if strings.HasPrefix(chrom, "chr") {
		return chrom[3:]
	}
	return chrom
}
