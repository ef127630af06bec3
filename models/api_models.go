// models/api_models.go
package models

// EnrichedListing is a listing joined with its ZIP's demographics. It only
// exists for listings whose normalized ZIP matched a demographics row.
// Pointer fields marshal to JSON null when undefined; the frontend renders
// null as "no data".
type EnrichedListing struct {
	ZipCode      string   `json:"zip_code"`
	ListingPrice *float64 `json:"listing_price"`
	SqFt         *float64 `json:"sq_ft"`
	Bedrooms     *float64 `json:"bedrooms,omitempty"`
	PricePerSqFt *float64 `json:"price_per_sqft"`
	MedianIncome *float64 `json:"median_income"`
	SchoolRating *float64 `json:"school_rating"`
	CrimeIndex   *float64 `json:"crime_index,omitempty"`
}

// Filter holds the user-selected constraints from the frontend widgets.
// Empty Zips means all ZIP codes; a nil range bound means unbounded on that
// side. All predicates apply conjunctively.
type Filter struct {
	Zips      []string
	PriceMin  *float64
	PriceMax  *float64
	IncomeMin *float64
	IncomeMax *float64
}

// KPIReport holds the four headline averages over the filtered set. Each is
// nil ("no data") when no filtered row contributed a defined value to it.
type KPIReport struct {
	AvgListingPrice *float64 `json:"avg_listing_price"`
	AvgPricePerSqFt *float64 `json:"avg_price_per_sqft"`
	AvgMedianIncome *float64 `json:"avg_median_income"`
	AvgSchoolRating *float64 `json:"avg_school_rating"`
}

// DashboardView is the full response for the dashboard endpoint: the
// filtered row table plus the KPIs, with counts for observability.
type DashboardView struct {
	KPIs     KPIReport         `json:"kpis"`
	Listings []EnrichedListing `json:"listings"`

	// RowCount is len(Listings); TotalListings is the pre-filter listing
	// count; UnmatchedListings counts listings dropped at the join because
	// their ZIP had no demographics match (or was malformed).
	RowCount          int `json:"row_count"`
	TotalListings     int `json:"total_listings"`
	UnmatchedListings int `json:"unmatched_listings"`
}

// FilterOptions seeds the frontend's filter widgets: the distinct matched
// ZIP codes and the observed bounds for the two range sliders.
type FilterOptions struct {
	Zips      []string `json:"zips"`
	PriceMin  *float64 `json:"price_min"`
	PriceMax  *float64 `json:"price_max"`
	IncomeMin *float64 `json:"income_min"`
	IncomeMax *float64 `json:"income_max"`
}
