// models/demographics.go
package models

// RawDemographics represents one ZIP-level demographics row as it appears
// in the demographics CSV. Kept as strings for the same coerce-on-clean
// reason as RawListing.
// CSV tags EXACTLY match the source file headers.
type RawDemographics struct {
	ZipCode      string `csv:"zip_code"`
	MedianIncome string `csv:"median_income"`
	SchoolRating string `csv:"school_rating"`
	CrimeIndex   string `csv:"crime_index"`
}

// SchoolRatingMin and SchoolRatingMax bound the valid school rating scale
// (1 = low, 10 = high). Out-of-range source values are coerced to nil.
const (
	SchoolRatingMin = 1.0
	SchoolRatingMax = 10.0
)

// Demographics is a cleaned ZIP-level demographics record.
type Demographics struct {
	ZipCode      string
	MedianIncome *float64
	SchoolRating *float64
	CrimeIndex   *float64
}
