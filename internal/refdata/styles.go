package refdata

import "takeitiz/internal/domain"

// Daily per-person spend anchors in USD at the reference city (index 100)
// for the moderate tier. Lodging is handled by the accommodation curve.
var DailyAnchorsUSD = map[domain.Category]float64{
	domain.CategoryFood:       55,
	domain.CategoryTransport:  12,
	domain.CategoryActivities: 25,
	domain.CategoryNightlife:  20,
	domain.CategoryMisc:       15,
}

// styleProfiles maps spending tiers to an overall cost factor and the
// hotel price percentile fed to the accommodation curve. Factors are
// strictly increasing across tiers.
var styleProfiles = map[domain.Style]domain.StyleProfile{
	domain.StyleEconomy:  {Factor: 0.55, HotelPercentile: 0.25},
	domain.StyleModerate: {Factor: 1.00, HotelPercentile: 0.50},
	domain.StyleComfort:  {Factor: 1.65, HotelPercentile: 0.70},
	domain.StyleLuxury:   {Factor: 3.10, HotelPercentile: 0.90},
}

// StyleFor returns the tier's profile. Unknown tiers degrade to moderate,
// reported through ok=false so callers can audit the substitution.
func StyleFor(s domain.Style) (domain.StyleProfile, bool) {
	if p, ok := styleProfiles[s]; ok {
		return p, true
	}
	return styleProfiles[domain.StyleModerate], false
}

// vibeProfiles reweights the spend categories per trip theme. Nightlife is
// near zero for family and nature trips and amplified for party trips.
var vibeProfiles = map[domain.Vibe]map[domain.Category]float64{
	domain.VibeMixed: {
		domain.CategoryNightlife: 0.50,
	},
	domain.VibeCulture: {
		domain.CategoryFood:       1.05,
		domain.CategoryActivities: 1.30,
		domain.CategoryNightlife:  0.40,
	},
	domain.VibeGastro: {
		domain.CategoryFood:       1.40,
		domain.CategoryActivities: 0.90,
		domain.CategoryNightlife:  0.70,
	},
	domain.VibeNature: {
		domain.CategoryTransport:  1.15,
		domain.CategoryActivities: 1.20,
		domain.CategoryNightlife:  0.10,
	},
	domain.VibeParty: {
		domain.CategoryFood:       1.15,
		domain.CategoryActivities: 1.10,
		domain.CategoryNightlife:  2.20,
		domain.CategoryMisc:       1.10,
	},
	domain.VibeFamily: {
		domain.CategoryFood:       1.10,
		domain.CategoryActivities: 1.15,
		domain.CategoryNightlife:  0.05,
	},
}

// VibeFor returns the theme's category multipliers (1.0 where unlisted).
// Unknown vibes degrade to the mixed-tourist profile, reported via ok.
func VibeFor(v domain.Vibe) (map[domain.Category]float64, bool) {
	if m, ok := vibeProfiles[v]; ok {
		return m, true
	}
	return vibeProfiles[domain.VibeMixed], false
}

// VibeMultiplier reads one category's multiplier out of a vibe profile.
func VibeMultiplier(profile map[domain.Category]float64, c domain.Category) float64 {
	if f, ok := profile[c]; ok {
		return f
	}
	return 1.0
}
