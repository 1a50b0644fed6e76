package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Adam11-11/Projet-Immobilier/models"
)

func TestRawStageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	listings := []*models.RawListing{
		{Ville: "Melun", Type: "Maison", Surface: "120 m²", NbrPieces: "5",
			NbrChambres: "3", NbrSdb: "1", DPE: "D (151 à 230)", Prix: "250000"},
		{Ville: "Paris 15ème", Type: "Appartement", Surface: "-", NbrPieces: "2",
			NbrChambres: "-", NbrSdb: "-", DPE: "-", Prix: "310000"},
	}
	if err := w.WriteRaw(listings); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := ReadRaw(path)
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got[0].Ville != "Melun" || got[0].Prix != "250000" {
		t.Errorf("row 0: got %+v", got[0])
	}
	if got[1].Surface != "-" || got[1].DPE != "-" {
		t.Errorf("row 1 sentinels lost: got %+v", got[1])
	}
}

func TestReadGazetteerMapsColumnsByHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.csv")
	csv := "insee_code,latitude,label,longitude,zip_code\n" +
		"77288,48.5421,Melun,2.6554,77000\n" +
		"78646,48.8049,Versailles,2.1204,78000\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	entries, err := ReadGazetteer(path)
	if err != nil {
		t.Fatalf("ReadGazetteer: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Label != "Melun" || entries[0].Latitude != "48.5421" || entries[0].Longitude != "2.6554" {
		t.Errorf("entry 0: got %+v", entries[0])
	}
}

func TestReadGazetteerMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.csv")
	if err := os.WriteFile(path, []byte("label,latitude\nMelun,48.5\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := ReadGazetteer(path); err == nil {
		t.Fatal("expected an error for a gazetteer without a longitude column")
	}
}
