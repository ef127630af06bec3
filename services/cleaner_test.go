package services_test

import (
	"testing"

	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/models"
	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/services"
)

func TestCleanListings(t *testing.T) {
	t.Parallel()

	t.Run("well-formed row", func(t *testing.T) {
		t.Parallel()

		got := services.CleanListings([]models.RawListing{
			{PostalCode: "94016", ListingPrice: "500000", SqFt: "1000", Bedrooms: "3"},
		})

		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		l := got[0]
		if l.ZipCode != "94016" {
			t.Errorf("ZipCode = %q, want 94016", l.ZipCode)
		}
		if l.ListingPrice == nil || *l.ListingPrice != 500000 {
			t.Errorf("ListingPrice = %v, want 500000", l.ListingPrice)
		}
		if l.PricePerSqFt == nil || *l.PricePerSqFt != 500 {
			t.Errorf("PricePerSqFt = %v, want 500", l.PricePerSqFt)
		}
	})

	t.Run("currency formatting tolerated", func(t *testing.T) {
		t.Parallel()

		got := services.CleanListings([]models.RawListing{
			{PostalCode: "94016-1234", ListingPrice: "$1,250,000", SqFt: "2,500"},
		})

		l := got[0]
		if l.ZipCode != "94016" {
			t.Errorf("ZipCode = %q, want 94016", l.ZipCode)
		}
		if l.ListingPrice == nil || *l.ListingPrice != 1250000 {
			t.Errorf("ListingPrice = %v, want 1250000", l.ListingPrice)
		}
		if l.PricePerSqFt == nil || *l.PricePerSqFt != 500 {
			t.Errorf("PricePerSqFt = %v, want 500", l.PricePerSqFt)
		}
	})

	t.Run("garbage numerics become undefined, never zero", func(t *testing.T) {
		t.Parallel()

		got := services.CleanListings([]models.RawListing{
			{PostalCode: "94016", ListingPrice: "N/A", SqFt: "", Bedrooms: "three"},
		})

		l := got[0]
		if l.ListingPrice != nil {
			t.Errorf("ListingPrice = %v, want nil", *l.ListingPrice)
		}
		if l.SqFt != nil {
			t.Errorf("SqFt = %v, want nil", *l.SqFt)
		}
		if l.Bedrooms != nil {
			t.Errorf("Bedrooms = %v, want nil", *l.Bedrooms)
		}
		if l.PricePerSqFt != nil {
			t.Errorf("PricePerSqFt = %v, want nil", *l.PricePerSqFt)
		}
	})

	t.Run("price per sqft undefined for zero or missing sqft", func(t *testing.T) {
		t.Parallel()

		got := services.CleanListings([]models.RawListing{
			{PostalCode: "94016", ListingPrice: "500000", SqFt: "0"},
			{PostalCode: "94016", ListingPrice: "500000", SqFt: "-10"},
			{PostalCode: "94016", ListingPrice: "500000"},
		})

		for i, l := range got {
			if l.PricePerSqFt != nil {
				t.Errorf("row %d: PricePerSqFt = %v, want nil", i, *l.PricePerSqFt)
			}
		}
	})

	t.Run("row count preserved for malformed rows", func(t *testing.T) {
		t.Parallel()

		// Cleaning never drops rows; the join decides what is unmatched.
		got := services.CleanListings([]models.RawListing{
			{PostalCode: "bad-zip", ListingPrice: "junk", SqFt: "junk"},
			{PostalCode: "94016", ListingPrice: "100", SqFt: "10"},
		})
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].ZipCode != "" {
			t.Errorf("ZipCode = %q, want empty for unextractable ZIP", got[0].ZipCode)
		}
	})
}

func TestCleanDemographics(t *testing.T) {
	t.Parallel()

	t.Run("well-formed row", func(t *testing.T) {
		t.Parallel()

		got := services.CleanDemographics([]models.RawDemographics{
			{ZipCode: "94016", MedianIncome: "80000", SchoolRating: "8", CrimeIndex: "32.5"},
		})

		d := got[0]
		if d.ZipCode != "94016" {
			t.Errorf("ZipCode = %q, want 94016", d.ZipCode)
		}
		if d.MedianIncome == nil || *d.MedianIncome != 80000 {
			t.Errorf("MedianIncome = %v, want 80000", d.MedianIncome)
		}
		if d.SchoolRating == nil || *d.SchoolRating != 8 {
			t.Errorf("SchoolRating = %v, want 8", d.SchoolRating)
		}
		if d.CrimeIndex == nil || *d.CrimeIndex != 32.5 {
			t.Errorf("CrimeIndex = %v, want 32.5", d.CrimeIndex)
		}
	})

	t.Run("out-of-range school rating coerced to undefined", func(t *testing.T) {
		t.Parallel()

		got := services.CleanDemographics([]models.RawDemographics{
			{ZipCode: "94016", SchoolRating: "0"},
			{ZipCode: "94017", SchoolRating: "11"},
			{ZipCode: "94018", SchoolRating: "10"},
			{ZipCode: "94019", SchoolRating: "1"},
		})

		if got[0].SchoolRating != nil {
			t.Errorf("rating 0: got %v, want nil", *got[0].SchoolRating)
		}
		if got[1].SchoolRating != nil {
			t.Errorf("rating 11: got %v, want nil", *got[1].SchoolRating)
		}
		if got[2].SchoolRating == nil || *got[2].SchoolRating != 10 {
			t.Errorf("rating 10: got %v, want 10", got[2].SchoolRating)
		}
		if got[3].SchoolRating == nil || *got[3].SchoolRating != 1 {
			t.Errorf("rating 1: got %v, want 1", got[3].SchoolRating)
		}
	})
}
