package refdata

import (
	"sort"
	"strings"

	"takeitiz/internal/domain"
)

// RegionDefault is the coarse per-country/region fallback used when the
// curated dataset has no entry but the text names a recognizable region.
type RegionDefault struct {
	Region  string
	Index   float64
	Profile domain.ClimateProfile
	Country string // set only when the region is a single country
}

var regionDefaults = map[string]RegionDefault{
	"BR":    {Region: "BR", Index: 85, Profile: domain.ProfileSouthTropical, Country: "BR"},
	"US":    {Region: "US", Index: 140, Profile: domain.ProfileNorthTemperate, Country: "US"},
	"EU":    {Region: "EU", Index: 120, Profile: domain.ProfileNorthTemperate},
	"WORLD": {Region: "WORLD", Index: 100, Profile: domain.ProfileDefault},
}

// GlobalDefault is the last-resort index/profile when nothing else matches.
func GlobalDefault() RegionDefault { return regionDefaults["WORLD"] }

// regionKeywords maps free-text tokens to a region default. Keys are
// normalized the same way destination input is.
var regionKeywords = map[string]string{
	"brazil": "BR", "brasil": "BR",
	"usa": "US", "united states": "US", "estados unidos": "US",
	"europe": "EU", "europa": "EU",
	"portugal": "EU", "spain": "EU", "espanha": "EU", "france": "EU",
	"franca": "EU", "italy": "EU", "italia": "EU", "germany": "EU",
	"alemanha": "EU", "greece": "EU", "grecia": "EU", "netherlands": "EU",
	"england": "EU", "united kingdom": "EU", "switzerland": "EU",
	"austria": "EU", "ireland": "EU", "croatia": "EU",
}

// regionKeywordOrder mirrors destinationKeys: longest keyword first so
// "united states" is tried before any shorter token it contains.
var regionKeywordOrder = sortedKeysByLength(regionKeywords)

func sortedKeysByLength(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// InferRegion scans normalized text for a country or macro-region token.
func InferRegion(normalized string) (RegionDefault, bool) {
	for _, kw := range regionKeywordOrder {
		if strings.Contains(normalized, kw) {
			return regionDefaults[regionKeywords[kw]], true
		}
	}
	return RegionDefault{}, false
}

// Country cost tiers used for geocoded fallbacks, indexed by ISO country
// code. Anything unlisted sits at the reference level of 100.
var countryTiers = map[string]float64{
	"CH": 150, "NO": 150, "IS": 150, "US": 150, "SG": 150,
	"GB": 130, "FR": 130, "DE": 130, "IE": 130, "JP": 130, "AE": 130, "AU": 130,
	"BR": 65, "AR": 65, "MX": 65, "ZA": 65, "TH": 65, "CN": 65,
}

// TierIndex returns the geocoded country's cost index.
func TierIndex(countryCode string) float64 {
	if idx, ok := countryTiers[strings.ToUpper(countryCode)]; ok {
		return idx
	}
	return 100
}

// Destinations whose high season is driven by travelers fleeing the
// northern winter, regardless of their own hemisphere.
var winterEscapeCountries = map[string]bool{
	"TH": true, "AE": true, "MV": true, "ID": true, "DO": true, "CU": true,
}

// U.S. states behaving like winter-escape markets despite the country
// being north temperate overall.
var winterEscapeSubdivisions = map[string]bool{
	"florida": true, "hawaii": true,
}

// GeoProfile maps a geocoding result to a climate profile: special-cased
// subdivisions first, then escape countries, then hemisphere by latitude.
func GeoProfile(countryCode, subdivision string, lat float64) domain.ClimateProfile {
	if winterEscapeSubdivisions[strings.ToLower(subdivision)] {
		return domain.ProfileWinterEscape
	}
	if winterEscapeCountries[strings.ToUpper(countryCode)] {
		return domain.ProfileWinterEscape
	}
	if lat < 0 {
		return domain.ProfileSouthTropical
	}
	return domain.ProfileNorthTemperate
}
