// services/dataset_service.go
package services

import (
	"fmt"
	"log"
	"os"

	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/config"
	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/ingest"
	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/models"
)

// Dataset holds the two cleaned source tables. It is built once at startup
// and never mutated afterwards; every pipeline run reads from it and builds
// its own intermediate tables.
type Dataset struct {
	Listings     []models.Listing
	Demographics []models.Demographics
}

// LoadDataset fetches (when a URL is configured), opens, parses and cleans
// both source tables. Any failure here is fatal to the caller: the system
// cannot serve anything without both sources.
func LoadDataset(sources config.SourcesConfig) (*Dataset, error) {
	listings, err := loadListings(sources.Listings)
	if err != nil {
		return nil, err
	}

	demographics, err := loadDemographics(sources.Demographics)
	if err != nil {
		return nil, err
	}

	log.Printf("Service: dataset loaded (%d listings, %d demographics rows).\n",
		len(listings), len(demographics))

	return &Dataset{
		Listings:     listings,
		Demographics: demographics,
	}, nil
}

func loadListings(src config.SourceConfig) ([]models.Listing, error) {
	if err := ingest.FetchSourceIfRemote(src); err != nil {
		return nil, fmt.Errorf("failed to fetch listings source: %w", err)
	}

	file, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listings file %s: %w", src.Path, err)
	}
	defer file.Close()

	raw, err := ingest.ParseListingsCsv(file)
	if err != nil {
		return nil, err
	}
	return CleanListings(raw), nil
}

func loadDemographics(src config.SourceConfig) ([]models.Demographics, error) {
	if err := ingest.FetchSourceIfRemote(src); err != nil {
		return nil, fmt.Errorf("failed to fetch demographics source: %w", err)
	}

	file, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open demographics file %s: %w", src.Path, err)
	}
	defer file.Close()

	raw, err := ingest.ParseDemographicsCsv(file)
	if err != nil {
		return nil, err
	}
	return CleanDemographics(raw), nil
}
