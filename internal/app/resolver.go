package app

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"takeitiz/internal/domain"
	"takeitiz/internal/refdata"
)

// Resolution is everything the estimator needs to know about a destination.
type Resolution struct {
	Index       domain.CostIndex
	Profile     domain.ClimateProfile
	Modifiers   map[domain.Category]float64
	CountryCode string // empty when unknown
	Matched     string // curated key, region, or geocoded country
}

// Modifier returns the destination's factor for a category, 1.0 when absent.
func (r Resolution) Modifier(c domain.Category) float64 {
	if f, ok := r.Modifiers[c]; ok {
		return f
	}
	return 1.0
}

// DestinationResolver maps free-text destinations onto the reference data,
// in strict precedence: curated dataset, region keyword inference, forward
// geocoding, global default. The geocoder is optional; without one that
// tier is skipped.
type DestinationResolver struct {
	geo domain.Geocoder
}

func NewDestinationResolver(geo domain.Geocoder) *DestinationResolver {
	return &DestinationResolver{geo: geo}
}

func (r *DestinationResolver) Resolve(ctx context.Context, text string, tr *domain.Trail) Resolution {
	normalized := NormalizePlace(text)

	if key, d, ok := refdata.MatchDestination(normalized); ok {
		tr.OK("destination", "curated match %q: index %.0f, %s profile", key, d.Index, d.Profile)
		return Resolution{
			Index:       domain.CostIndex{Value: d.Index, Confidence: domain.ConfidenceHigh},
			Profile:     d.Profile,
			Modifiers:   d.Modifiers,
			CountryCode: d.Country,
			Matched:     key,
		}
	}

	if rd, ok := refdata.InferRegion(normalized); ok {
		tr.Info("destination", "no curated entry; region keyword %s: default index %.0f, %s profile",
			rd.Region, rd.Index, rd.Profile)
		return Resolution{
			Index:       domain.CostIndex{Value: rd.Index, Confidence: domain.ConfidenceMedium},
			Profile:     rd.Profile,
			CountryCode: rd.Country,
			Matched:     rd.Region,
		}
	}

	if r.geo != nil {
		// Network failures here are fallback-through, never errors.
		g, err := r.geo.Geocode(ctx, text)
		switch {
		case err != nil:
			tr.Warn("destination", "geocoding failed: %v", err)
		case g.Found && g.CountryCode != "":
			idx := refdata.TierIndex(g.CountryCode)
			profile := refdata.GeoProfile(g.CountryCode, g.Subdivision, g.Lat)
			tr.Info("destination", "geocoded to %s (%s): tier index %.0f, %s profile",
				g.CountryCode, g.DisplayName, idx, profile)
			return Resolution{
				Index:       domain.CostIndex{Value: idx, Confidence: domain.ConfidenceMedium},
				Profile:     profile,
				CountryCode: g.CountryCode,
				Matched:     g.CountryCode,
			}
		default:
			tr.Info("destination", "geocoder found no match for %q", text)
		}
	}

	gd := refdata.GlobalDefault()
	tr.Warn("destination", "unresolved destination %q; using global default index %.0f", text, gd.Index)
	return Resolution{
		Index:   domain.CostIndex{Value: gd.Index, Confidence: domain.ConfidenceLow},
		Profile: gd.Profile,
		Matched: gd.Region,
	}
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizePlace lowercases, strips diacritics, and collapses whitespace so
// "São Paulo " and "sao paulo" hit the same dataset key.
func NormalizePlace(s string) string {
	folded, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(folded), " ")
}
