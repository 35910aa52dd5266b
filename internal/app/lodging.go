package app

import "math"

// Reference-city nightly rate in USD and the shape of the percentile curve.
// curveK is tuned so the economy percentile lands near 0.5x the reference
// and the luxury percentile near 3-6x, matching how hotel prices fan out
// long-tailed at the top rather than linearly.
const (
	lodgingBaseUSD   = 110.0
	lodgingCurveK    = 2.8
	lodgingAnchorPct = 0.5
)

// NightlyRate estimates a nightly lodging rate in USD from a destination
// cost index (reference = 100) and a target hotel price percentile in
// [0,1]. Pure function.
func NightlyRate(index, percentile float64) float64 {
	return lodgingBaseUSD * (index / 100.0) * math.Exp(lodgingCurveK*(percentile-lodgingAnchorPct))
}
