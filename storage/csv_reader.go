package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Adam11-11/Projet-Immobilier/models"
)

// ReadRaw loads a stage-1 CSV back into memory, re-establishing the
// scrape/clean stage boundary: the clean stage always starts from the flat
// file, never from the in-process scrape result.
func ReadRaw(path string) ([]*models.RawListing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %q has no header row", path)
	}

	listings := make([]*models.RawListing, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < len(rawHeader) {
			return nil, fmt.Errorf("csv: %q row %d has %d columns, want %d",
				path, i+2, len(rec), len(rawHeader))
		}
		listings = append(listings, &models.RawListing{
			Ville:       rec[0],
			Type:        rec[1],
			Surface:     rec[2],
			NbrPieces:   rec[3],
			NbrChambres: rec[4],
			NbrSdb:      rec[5],
			DPE:         rec[6],
			Prix:        rec[7],
		})
	}
	return listings, nil
}

// ReadGazetteer loads the city reference table. Columns are located by
// header name so extra gazetteer columns are ignored. Entries keep file
// order; deduplication happens at join time.
func ReadGazetteer(path string) ([]*models.GazetteerEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("gazetteer: read %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("gazetteer: %q has no header row", path)
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, required := range []string{"label", "latitude", "longitude"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("gazetteer: %q is missing column %q", path, required)
		}
	}

	entries := make([]*models.GazetteerEntry, 0, len(records)-1)
	for i, rec := range records[1:] {
		max := cols["label"]
		if cols["latitude"] > max {
			max = cols["latitude"]
		}
		if cols["longitude"] > max {
			max = cols["longitude"]
		}
		if len(rec) <= max {
			return nil, fmt.Errorf("gazetteer: %q row %d is too short", path, i+2)
		}
		entries = append(entries, &models.GazetteerEntry{
			Label:     rec[cols["label"]],
			Latitude:  rec[cols["latitude"]],
			Longitude: rec[cols["longitude"]],
		})
	}
	return entries, nil
}
