package models

// Regions are the four fixed census-style groupings of US state codes. The
// membership lists are part of the query contract.
var Regions = map[string][]string{
	"Northeast": {"CT", "ME", "MA", "NH", "RI", "VT", "NJ", "NY", "PA"},
	"Midwest":   {"IL", "IN", "IA", "KS", "MI", "MN", "MO", "NE", "ND", "OH", "SD", "WI"},
	"South":     {"AL", "AR", "DE", "DC", "FL", "GA", "KY", "LA", "MD", "MS", "NC", "OK", "SC", "TN", "TX", "VA", "WV"},
	"West":      {"AK", "AZ", "CA", "CO", "HI", "ID", "MT", "NV", "NM", "OR", "UT", "WA", "WY"},
}

// RegionContains reports whether the upper-cased state code belongs to the
// named region. Unknown regions contain no states, so filtering on one
// matches nothing.
func RegionContains(region, state string) bool {
	for _, code := range Regions[region] {
		if code == state {
			return true
		}
	}
	return false
}
