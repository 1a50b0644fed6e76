package services

import (
	"github.com/Adam11-11/Projet-Immobilier/models"
	"github.com/Adam11-11/Projet-Immobilier/utils"
)

// Geocoder left-joins listings to gazetteer coordinates on normalized city
// names.
type Geocoder struct {
	logger     *utils.Logger
	normalizer *Normalizer
	byKey      map[string]*models.GazetteerEntry
}

// NewGeocoder indexes the gazetteer by normalized label. Duplicate labels
// keep the first occurrence in file order.
func NewGeocoder(logger *utils.Logger, normalizer *Normalizer, entries []*models.GazetteerEntry) *Geocoder {
	byKey := make(map[string]*models.GazetteerEntry, len(entries))
	for _, e := range entries {
		key := normalizer.Key(e.Label)
		if _, exists := byKey[key]; exists {
			continue
		}
		byKey[key] = e
	}

	logger.Info("[geocoder] Indexed %d gazetteer entries (%d unique keys)",
		len(entries), len(byKey))
	return &Geocoder{logger: logger, normalizer: normalizer, byKey: byKey}
}

// Enrich attaches latitude/longitude to every listing whose normalized
// city matches a gazetteer key. Unmatched listings keep empty coordinates
// and are never dropped.
func (g *Geocoder) Enrich(listings []*models.CleanListing) {
	matched := 0
	for _, l := range listings {
		entry, ok := g.byKey[g.normalizer.ListingKey(l.Ville)]
		if !ok {
			continue
		}
		l.Latitude = entry.Latitude
		l.Longitude = entry.Longitude
		matched++
	}

	g.logger.Info("[geocoder] Geocoded %d/%d listings", matched, len(listings))
}
