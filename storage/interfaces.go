package storage

import "github.com/Adam11-11/Projet-Immobilier/models"

// RawListingWriter is the interface for persisting stage-1 scraped records.
type RawListingWriter interface {
	WriteRaw(listings []*models.RawListing) error
	Close() error
}

// CleanListingWriter is the interface for persisting the final encoded
// dataset.
type CleanListingWriter interface {
	WriteClean(listings []*models.CleanListing) error
	Close() error
}
