package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Adam11-11/Projet-Immobilier/models"
)

// rawHeader is the fixed stage-1 column set, one column per scraped field.
var rawHeader = []string{
	"Ville", "Type", "Surface", "NbrPieces", "NbrChambres", "NbrSdb", "DPE", "Prix",
}

// CSVWriter writes listings to a CSV file, one of the two pipeline stages
// per instance.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path.
// Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	return &CSVWriter{file: f, writer: csv.NewWriter(f)}, nil
}

// WriteRaw writes the stage-1 header plus one row per validated listing.
func (c *CSVWriter) WriteRaw(listings []*models.RawListing) error {
	if err := c.writer.Write(rawHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, l := range listings {
		row := []string{
			l.Ville,
			l.Type,
			l.Surface,
			l.NbrPieces,
			l.NbrChambres,
			l.NbrSdb,
			l.DPE,
			l.Prix,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// WriteClean writes the final encoded dataset. The raw city column and the
// join key never appear in the output; only the enriched coordinate
// columns do.
func (c *CSVWriter) WriteClean(listings []*models.CleanListing) error {
	header := []string{"Surface", "NbrPieces", "NbrChambres", "NbrSdb", "Prix",
		"Type_Appartement", "Type_Maison"}
	for _, cat := range models.DPECategories {
		header = append(header, "DPE_"+cat)
	}
	header = append(header, "latitude", "longitude")

	if err := c.writer.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, l := range listings {
		row := []string{
			formatFloat(l.Surface),
			formatFloat(l.NbrPieces),
			formatFloat(l.NbrChambres),
			formatFloat(l.NbrSdb),
			strconv.Itoa(l.Prix),
			strconv.Itoa(l.TypeAppartement),
			strconv.Itoa(l.TypeMaison),
		}
		for _, cat := range models.DPECategories {
			row = append(row, strconv.Itoa(l.DPE[cat]))
		}
		row = append(row, l.Latitude, l.Longitude)

		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
