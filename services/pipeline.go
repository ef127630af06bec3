// services/pipeline.go
package services

import (
	"sort"

	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/models"
)

// Run executes one full pipeline pass: join the two sources on normalized
// ZIP code, apply the filter, aggregate. It is a pure function of
// (dataset, filter) and builds fresh tables on every call, so the frontend
// can re-invoke it on every widget change.
func Run(ds *Dataset, f models.Filter) models.DashboardView {
	enriched, unmatched := Join(ds)
	filtered := ApplyFilter(enriched, f)

	return models.DashboardView{
		KPIs:              Aggregate(filtered),
		Listings:          filtered,
		RowCount:          len(filtered),
		TotalListings:     len(ds.Listings),
		UnmatchedListings: unmatched,
	}
}

// Join inner-joins listings with demographics on normalized ZIP code.
// Listings whose ZIP is empty or has no demographics row are dropped and
// counted, not kept. Output preserves listing input order, so joining the
// same dataset twice yields identical output.
func Join(ds *Dataset) ([]models.EnrichedListing, int) {
	byZip := make(map[string]models.Demographics, len(ds.Demographics))
	for _, d := range ds.Demographics {
		if d.ZipCode == "" {
			continue
		}
		byZip[d.ZipCode] = d
	}

	enriched := make([]models.EnrichedListing, 0, len(ds.Listings))
	unmatched := 0

	for _, l := range ds.Listings {
		d, ok := byZip[l.ZipCode]
		if l.ZipCode == "" || !ok {
			unmatched++
			continue
		}
		enriched = append(enriched, models.EnrichedListing{
			ZipCode:      l.ZipCode,
			ListingPrice: l.ListingPrice,
			SqFt:         l.SqFt,
			Bedrooms:     l.Bedrooms,
			PricePerSqFt: l.PricePerSqFt,
			MedianIncome: d.MedianIncome,
			SchoolRating: d.SchoolRating,
			CrimeIndex:   d.CrimeIndex,
		})
	}

	return enriched, unmatched
}

// ApplyFilter keeps the rows satisfying every active predicate. A row
// whose field is undefined cannot satisfy an active range constraint on
// that field and is excluded.
func ApplyFilter(rows []models.EnrichedListing, f models.Filter) []models.EnrichedListing {
	zipSet := make(map[string]bool, len(f.Zips))
	for _, z := range f.Zips {
		zipSet[z] = true
	}

	filtered := make([]models.EnrichedListing, 0, len(rows))
	for _, row := range rows {
		if len(zipSet) > 0 && !zipSet[row.ZipCode] {
			continue
		}
		if !inRange(row.ListingPrice, f.PriceMin, f.PriceMax) {
			continue
		}
		if !inRange(row.MedianIncome, f.IncomeMin, f.IncomeMax) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// inRange reports whether val satisfies [min, max]. nil bounds are
// unconstrained; a nil val only passes when both bounds are nil.
func inRange(val, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if val == nil {
		return false
	}
	if min != nil && *val < *min {
		return false
	}
	if max != nil && *val > *max {
		return false
	}
	return true
}

// Aggregate computes the four KPI means over the filtered set. Undefined
// values are skipped per-aggregate; a KPI with no contributing values is
// nil ("no data"), never a division by zero.
func Aggregate(rows []models.EnrichedListing) models.KPIReport {
	return models.KPIReport{
		AvgListingPrice: mean(rows, func(r models.EnrichedListing) *float64 { return r.ListingPrice }),
		AvgPricePerSqFt: mean(rows, func(r models.EnrichedListing) *float64 { return r.PricePerSqFt }),
		AvgMedianIncome: mean(rows, func(r models.EnrichedListing) *float64 { return r.MedianIncome }),
		AvgSchoolRating: mean(rows, func(r models.EnrichedListing) *float64 { return r.SchoolRating }),
	}
}

func mean(rows []models.EnrichedListing, field func(models.EnrichedListing) *float64) *float64 {
	var sum float64
	var n int
	for _, r := range rows {
		if v := field(r); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// Options reports the distinct matched ZIP codes (sorted) and the observed
// listing-price and median-income bounds over the enriched set, used by the
// frontend to seed its filter widgets.
func Options(ds *Dataset) models.FilterOptions {
	enriched, _ := Join(ds)

	zipSet := make(map[string]bool)
	var opts models.FilterOptions

	for _, row := range enriched {
		zipSet[row.ZipCode] = true
		opts.PriceMin = minOf(opts.PriceMin, row.ListingPrice)
		opts.PriceMax = maxOf(opts.PriceMax, row.ListingPrice)
		opts.IncomeMin = minOf(opts.IncomeMin, row.MedianIncome)
		opts.IncomeMax = maxOf(opts.IncomeMax, row.MedianIncome)
	}

	opts.Zips = make([]string, 0, len(zipSet))
	for z := range zipSet {
		opts.Zips = append(opts.Zips, z)
	}
	sort.Strings(opts.Zips)
	return opts
}

func minOf(cur, v *float64) *float64 {
	if v == nil {
		return cur
	}
	if cur == nil || *v < *cur {
		val := *v
		return &val
	}
	return cur
}

func maxOf(cur, v *float64) *float64 {
	if v == nil {
		return cur
	}
	if cur == nil || *v > *cur {
		val := *v
		return &val
	}
	return cur
}
