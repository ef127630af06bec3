// utils/zipcode.go
package utils

import "regexp"

var zip5Regex = regexp.MustCompile(`\d{5}`)

// NormalizeZipCode standardizes a postal/ZIP code to its canonical 5-digit
// form by extracting the first run of 5 digits. Handles ZIP+4 ("94016-1234"),
// whitespace padding, and float-formatted codes from spreadsheet exports
// ("94016.0"). Returns "" when no 5-digit run exists, which callers treat
// as an unmatched ZIP.
func NormalizeZipCode(code string) string {
	return zip5Regex.FindString(code)
}
