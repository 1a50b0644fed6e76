package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/Adam11-11/Projet-Immobilier/models"
	"github.com/Adam11-11/Projet-Immobilier/utils"
)

// Cleaner turns validated RawListings into the encoded, analysis-ready
// table: numeric parsing, column-mean imputation and one-hot encoding.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean processes raw listings into clean records. Missing numeric values
// are imputed with the column mean; rows that still miss a value afterwards
// (a column with no data at all) are dropped. Means are computed over the
// full table before any row is dropped.
func (c *Cleaner) Clean(raw []*models.RawListing) []*models.CleanListing {
	kept := make([]*models.RawListing, 0, len(raw))
	var surfaces, pieces, chambres, sdbs []float64

	for _, r := range raw {
		if _, err := strconv.Atoi(r.Prix); err != nil {
			c.logger.Warn("[cleaner] Dropping listing with unparsable price %q", r.Prix)
			continue
		}
		kept = append(kept, r)
		surfaces = append(surfaces, parseSurface(r.Surface))
		pieces = append(pieces, parseCount(r.NbrPieces))
		chambres = append(chambres, parseCount(r.NbrChambres))
		sdbs = append(sdbs, parseCount(r.NbrSdb))
	}

	fillColumnMean(surfaces)
	fillColumnMean(pieces)
	fillColumnMean(chambres)
	fillColumnMean(sdbs)

	result := make([]*models.CleanListing, 0, len(kept))
	for i, r := range kept {
		// A NaN survives imputation only when the whole column was empty.
		if math.IsNaN(surfaces[i]) || math.IsNaN(pieces[i]) ||
			math.IsNaN(chambres[i]) || math.IsNaN(sdbs[i]) {
			continue
		}

		prix, _ := strconv.Atoi(r.Prix)
		clean := &models.CleanListing{
			Ville:       r.Ville,
			Surface:     surfaces[i],
			NbrPieces:   pieces[i],
			NbrChambres: chambres[i],
			NbrSdb:      sdbs[i],
			Prix:        prix,
			DPE:         encodeDPE(r.DPE),
		}
		if r.Type == models.TypeMaison {
			clean.TypeMaison = 1
		} else {
			clean.TypeAppartement = 1
		}

		result = append(result, clean)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// parseSurface converts "120 m²" style values to a float, with the "-"
// sentinel and unparsable text mapping to NaN (missing).
func parseSurface(s string) float64 {
	s = strings.ReplaceAll(s, " m²", "")
	s = strings.ReplaceAll(s, " ", "")
	return parseCount(s)
}

// parseCount converts a raw count column value, with "-" and unparsable
// text mapping to NaN (missing).
func parseCount(s string) float64 {
	if s == models.Missing || s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// fillColumnMean replaces NaN entries with the mean of the present values.
// With no present values at all the column stays NaN and the rows are
// dropped later.
func fillColumnMean(col []float64) {
	var sum float64
	var n int
	for _, v := range col {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return
	}

	mean := sum / float64(n)
	for i, v := range col {
		if math.IsNaN(v) {
			col[i] = mean
		}
	}
}

// encodeDPE one-hot encodes an energy rating over the fixed category set.
// The "-" sentinel and any off-set value count as Vierge (unrated).
func encodeDPE(value string) map[string]int {
	if value == models.Missing {
		value = models.DPEVierge
	}

	dummies := make(map[string]int, len(models.DPECategories))
	known := false
	for _, cat := range models.DPECategories {
		dummies[cat] = 0
		if cat == value {
			dummies[cat] = 1
			known = true
		}
	}
	if !known {
		dummies[models.DPEVierge] = 1
	}
	return dummies
}
