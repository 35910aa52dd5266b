package refdata

import "takeitiz/internal/domain"

// Monthly demand multipliers per climate profile, January at index 0.
// Values are empirical and bound the seasonal swing to roughly ±50%;
// none may ever be zero or negative.
var seasonMatrices = map[domain.ClimateProfile][12]float64{
	// High season in local summer, trough in the dark months.
	domain.ProfileNorthTemperate: {0.80, 0.80, 0.90, 1.00, 1.10, 1.25, 1.35, 1.35, 1.10, 0.95, 0.85, 1.00},

	// Year-end / local-summer peak (carnival season), winter shoulder.
	domain.ProfileSouthTropical: {1.30, 1.25, 1.05, 0.90, 0.80, 0.75, 0.85, 0.85, 0.90, 1.00, 1.10, 1.40},

	// Dry/cool season peak for markets fed by northern-winter escapees.
	domain.ProfileWinterEscape: {1.35, 1.30, 1.20, 1.05, 0.90, 0.80, 0.85, 0.85, 0.90, 1.00, 1.15, 1.40},

	// Cold-weather resorts: peak in the local winter.
	domain.ProfileSouthCold: {0.85, 0.80, 0.85, 0.95, 1.05, 1.35, 1.40, 1.20, 1.00, 0.95, 0.85, 0.90},

	// Neutral curve with a mild mid-year uplift.
	domain.ProfileDefault: {1.00, 1.00, 1.00, 1.00, 1.05, 1.10, 1.10, 1.10, 1.05, 1.00, 1.00, 1.00},
}

// SeasonFactor returns the demand multiplier for a profile and calendar
// month (1-12). Unknown profiles use the default curve; an out-of-range
// month is treated as neutral.
func SeasonFactor(profile domain.ClimateProfile, month int) float64 {
	if month < 1 || month > 12 {
		return 1.0
	}
	m, ok := seasonMatrices[profile]
	if !ok {
		m = seasonMatrices[domain.ProfileDefault]
	}
	return m[month-1]
}
