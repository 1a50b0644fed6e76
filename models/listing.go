package models

import "time"

// Property type values as they appear on the site. Anything else
// invalidates the whole listing.
const (
	TypeMaison      = "Maison"
	TypeAppartement = "Appartement"
)

// Missing is the sentinel for an optional characteristic the listing page
// simply does not carry.
const Missing = "-"

// DPEVierge is the explicit "unrated" energy category.
const DPEVierge = "Vierge"

// DPECategories is the fixed set of energy-rating values used for one-hot
// encoding, in output column order. DPE values outside the set bucket into
// Vierge.
var DPECategories = []string{
	"A (< 50)",
	"B (51 à 90)",
	"C (91 à 150)",
	"D (151 à 230)",
	"E (231 à 330)",
	"F (331 à 450)",
	DPEVierge,
}

// RawListing is one fully validated advertisement exactly as scraped.
// A RawListing only exists when every field extractor succeeded; partial
// records are never built. Optional characteristics hold Missing.
type RawListing struct {
	Ville       string
	Type        string
	Surface     string
	NbrPieces   string
	NbrChambres string
	NbrSdb      string
	DPE         string
	Prix        string

	// Traceability only; not persisted to the CSV.
	URL       string
	ScrapedAt time.Time
}

// CleanListing is the encoded, analysis-ready record. Ville is carried
// through for the gazetteer join and dropped from the final output.
type CleanListing struct {
	Ville string

	Surface     float64
	NbrPieces   float64
	NbrChambres float64
	NbrSdb      float64
	Prix        int

	TypeAppartement int
	TypeMaison      int

	// DPE dummy values keyed by DPECategories entries, each 0 or 1.
	DPE map[string]int

	// Empty strings when the city had no gazetteer match.
	Latitude  string
	Longitude string
}

// GazetteerEntry maps one city label to its coordinates.
type GazetteerEntry struct {
	Label     string
	Latitude  string
	Longitude string
}

// InsightReport holds the computed analytics over the final dataset.
type InsightReport struct {
	TotalListings int
	Houses        int
	Apartments    int

	AveragePrice  float64
	MinPrice      int
	MaxPrice      int
	MostExpensive *CleanListing

	AverageSurface  float64
	ListingsByCity  map[string]int
	DPEDistribution map[string]int
	GeocodedCount   int
}
