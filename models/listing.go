// models/listing.go
package models

// RawListing represents one property listing row exactly as it appears in
// the listings CSV. All loosely-typed columns stay strings here so that a
// malformed value (e.g. "N/A" in listing_price, or a ZIP+4 postal code)
// coerces to an undefined value during cleaning instead of failing the
// whole decode.
// CSV tags EXACTLY match the source file headers.
type RawListing struct {
	PostalCode   string `csv:"postal_code"`
	ListingPrice string `csv:"listing_price"`
	SqFt         string `csv:"sq_ft"`
	Bedrooms     string `csv:"bedrooms"`
}

// Listing is a cleaned property listing. ZipCode is normalized to a
// 5-digit string ("" when no 5-digit run could be extracted). Numeric
// fields are pointers: nil means the source value was missing or
// unparseable, and nil propagates through every derived computation and
// aggregate rather than being treated as zero.
type Listing struct {
	ZipCode      string
	ListingPrice *float64
	SqFt         *float64
	Bedrooms     *float64

	// PricePerSqFt = ListingPrice / SqFt. nil when either input is nil
	// or SqFt <= 0.
	PricePerSqFt *float64
}
