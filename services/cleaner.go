// services/cleaner.go
package services

import (
	"log"
	"strconv"
	"strings"

	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/models"
	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/utils"
)

// CleanListings normalizes raw listing rows into typed Listing records:
// ZIP codes are standardized to 5 digits, numeric fields coerced (nil on
// garbage, never zero), and price-per-sqft derived with a guard against
// missing or non-positive square footage.
func CleanListings(raw []models.RawListing) []models.Listing {
	cleaned := make([]models.Listing, 0, len(raw))

	for _, r := range raw {
		l := models.Listing{
			ZipCode:      utils.NormalizeZipCode(r.PostalCode),
			ListingPrice: parseNumeric(r.ListingPrice),
			SqFt:         parseNumeric(r.SqFt),
			Bedrooms:     parseNumeric(r.Bedrooms),
		}
		l.PricePerSqFt = derivePricePerSqFt(l.ListingPrice, l.SqFt)
		cleaned = append(cleaned, l)
	}

	log.Printf("Service: cleaned %d listing rows.\n", len(cleaned))
	return cleaned
}

// CleanDemographics normalizes raw demographics rows. School ratings
// outside the 1..10 scale are treated as undefined.
func CleanDemographics(raw []models.RawDemographics) []models.Demographics {
	cleaned := make([]models.Demographics, 0, len(raw))

	for _, r := range raw {
		d := models.Demographics{
			ZipCode:      utils.NormalizeZipCode(r.ZipCode),
			MedianIncome: parseNumeric(r.MedianIncome),
			SchoolRating: parseNumeric(r.SchoolRating),
			CrimeIndex:   parseNumeric(r.CrimeIndex),
		}
		if d.SchoolRating != nil && (*d.SchoolRating < models.SchoolRatingMin || *d.SchoolRating > models.SchoolRatingMax) {
			d.SchoolRating = nil
		}
		cleaned = append(cleaned, d)
	}

	log.Printf("Service: cleaned %d demographics rows.\n", len(cleaned))
	return cleaned
}

// parseNumeric coerces a raw CSV value to a float. Currency symbols,
// thousands separators, and surrounding whitespace are tolerated; anything
// that still fails to parse becomes nil.
func parseNumeric(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &val
}

func derivePricePerSqFt(price, sqft *float64) *float64 {
	if price == nil || sqft == nil || *sqft <= 0 {
		return nil
	}
	pps := *price / *sqft
	return &pps
}
