package bed

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parser reads STR regions from a 5-column BED-style file:
// chrom, start, end, name, sequence.
type Parser struct {
	path string
}

// NewParser creates a parser for the given file.
func NewParser(path string) *Parser {
	return &Parser{path: path}
}

// Load reads all STR records from the file, in file order.
// Supports plain and gzipped (.gz) input. Structural problems are fatal.
func (p *Parser) Load() ([]*STR, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("open BED file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	if strings.HasSuffix(p.path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	strs, err := p.parse(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.path, err)
	}
	return strs, nil
}

func (p *Parser) parse(reader io.Reader) ([]*STR, error) {
	scanner := bufio.NewScanner(reader)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var strs []*STR
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			return nil, fmt.Errorf("line %d: invalid BED line: expected 5 fields, got %d", lineNum, len(fields))
		}

		start, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse start: %w", lineNum, err)
		}

		end, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse end: %w", lineNum, err)
		}

		strs = append(strs, NewSTR(normalizeChrom(fields[0]), start, end, fields[3], fields[4]))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan BED: %w", err)
	}

	if len(strs) == 0 {
		return nil, fmt.Errorf("empty or invalid BED file")
	}

	return strs, nil
}

// normalizeChrom strips the "chr" prefix so BED chromosomes match the
// annotation side regardless of naming convention.
func normalizeChrom(chrom string) string {
	if strings.HasPrefix(chrom, "chr") {
		return chrom[3:]
	}
	return chrom
}
