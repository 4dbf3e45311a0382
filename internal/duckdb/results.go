package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/strdensity/internal/density"
)

// WriteGeneResults batch-inserts density results using the Appender API.
func (s *Store) WriteGeneResults(results []*density.GeneResult) error {
	if len(results) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "gene_density")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range results {
		if err := appender.AppendRow(
			r.GeneID, r.GeneName,
			r.TotalGeneOverlap, r.GeneDensity,
			r.TotalExonOverlap, r.ExonDensity,
			r.TotalIntronOverlap, r.IntronDensity,
			r.STRTypesString(),
		); err != nil {
			return fmt.Errorf("append gene result: %w", err)
		}
	}

	return appender.Flush()
}

// ClearGeneResults removes all stored density results.
func (s *Store) ClearGeneResults() error {
	_, err := s.db.Exec("DELETE FROM gene_density")
	return err
}

// CountGeneResults returns the number of stored result rows.
func (s *Store) CountGeneResults() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM gene_density").Scan(&n); err != nil {
		return 0, fmt.Errorf("count gene results: %w", err)
	}
	return n, nil
}

// LookupGene queries previously stored results for a gene ID.
func (s *Store) LookupGene(geneID string) ([]*density.GeneResult, error) {
	rows, err := s.db.Query(`SELECT
		gene_id, gene_name,
		total_gene_overlap, gene_density,
		total_exon_overlap, exon_density,
		total_intron_overlap, intron_density,
		str_types
		FROM gene_density
		WHERE gene_id=?`, geneID)
	if err != nil {
		return nil, fmt.Errorf("query gene: %w", err)
	}
	defer rows.Close()

	var results []*density.GeneResult
	for rows.Next() {
		var r density.GeneResult
		var strTypes string
		if err := rows.Scan(
			&r.GeneID, &r.GeneName,
			&r.TotalGeneOverlap, &r.GeneDensity,
			&r.TotalExonOverlap, &r.ExonDensity,
			&r.TotalIntronOverlap, &r.IntronDensity,
			&strTypes,
		); err != nil {
			return nil, fmt.Errorf("scan gene: %w", err)
		}
		r.STRTypes = density.ParseSTRTypes(strTypes)
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genes: %w", err)
	}
	return results, nil
}
