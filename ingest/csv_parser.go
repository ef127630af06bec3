// ingest/csv_parser.go
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"

	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/models"
	"github.com/jszwec/csvutil"
)

// ParseListingsCsv takes an io.Reader containing the property listings CSV
// and returns a slice of RawListing structs. csvutil reads the first line
// as a header and maps columns to struct fields via the `csv:"..."` tags on
// models.RawListing.
func ParseListingsCsv(reader io.Reader) ([]models.RawListing, error) {
	var listings []models.RawListing

	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for listings: %w", err)
	}

	if err := decoder.Decode(&listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings CSV data: %w", err)
	}

	log.Printf("Ingest: parsed %d listing rows from CSV.\n", len(listings))
	return listings, nil
}

// ParseDemographicsCsv takes an io.Reader containing the ZIP demographics
// CSV and returns a slice of RawDemographics structs.
func ParseDemographicsCsv(reader io.Reader) ([]models.RawDemographics, error) {
	var demographics []models.RawDemographics

	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for demographics: %w", err)
	}

	if err := decoder.Decode(&demographics); err != nil {
		return nil, fmt.Errorf("failed to decode demographics CSV data: %w", err)
	}

	log.Printf("Ingest: parsed %d demographics rows from CSV.\n", len(demographics))
	return demographics, nil
}
