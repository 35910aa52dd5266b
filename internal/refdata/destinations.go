// Package refdata holds the static reference tables behind cost estimation:
// the curated destination dataset, country defaults and tiers, seasonality
// matrices, and style/vibe profiles. Everything here is immutable after
// process start and safe for concurrent reads.
package refdata

import (
	"sort"
	"strings"

	"takeitiz/internal/domain"
)

// Destination is one curated entry: a cost index relative to the reference
// city (100), a climate profile, and optional per-category modifiers for
// local price quirks (e.g. cheap food but expensive hotels).
type Destination struct {
	Index     float64
	Profile   domain.ClimateProfile
	Country   string // ISO 3166-1 alpha-2
	Modifiers map[domain.Category]float64
}

// Modifier returns the destination's factor for a category, 1.0 when absent.
func (d Destination) Modifier(c domain.Category) float64 {
	if f, ok := d.Modifiers[c]; ok {
		return f
	}
	return 1.0
}

// destinations is keyed by normalized (lowercase, diacritic-free) names.
// A few alias keys exist where travelers commonly type a variant spelling.
var destinations = map[string]Destination{
	// Hotels priced well above the city's general level.
	"lisbon":    {Index: 95, Country: "PT", Profile: domain.ProfileNorthTemperate, Modifiers: map[domain.Category]float64{domain.CategoryLodging: 1.4}},
	"lisboa":    {Index: 95, Country: "PT", Profile: domain.ProfileNorthTemperate, Modifiers: map[domain.Category]float64{domain.CategoryLodging: 1.4}},
	"amsterdam": {Index: 155, Country: "NL", Profile: domain.ProfileNorthTemperate, Modifiers: map[domain.Category]float64{domain.CategoryLodging: 1.3}},
	"new york":  {Index: 190, Country: "US", Profile: domain.ProfileNorthTemperate, Modifiers: map[domain.Category]float64{domain.CategoryLodging: 1.2}},

	// Transit priced above the general level.
	"london": {Index: 175, Country: "GB", Profile: domain.ProfileNorthTemperate, Modifiers: map[domain.Category]float64{domain.CategoryTransport: 1.4}},

	// Europe.
	"madrid":    {Index: 100, Country: "ES", Profile: domain.ProfileNorthTemperate},
	"barcelona": {Index: 112, Country: "ES", Profile: domain.ProfileNorthTemperate},
	"porto":     {Index: 88, Country: "PT", Profile: domain.ProfileNorthTemperate},
	"paris":     {Index: 160, Country: "FR", Profile: domain.ProfileNorthTemperate},
	"rome":      {Index: 135, Country: "IT", Profile: domain.ProfileNorthTemperate, Modifiers: map[domain.Category]float64{domain.CategoryFood: 0.9}},
	"venice":    {Index: 160, Country: "IT", Profile: domain.ProfileNorthTemperate},
	"zurich":    {Index: 200, Country: "CH", Profile: domain.ProfileNorthTemperate},
	"santorini": {Index: 140, Country: "GR", Profile: domain.ProfileNorthTemperate},
	"istanbul":  {Index: 85, Country: "TR", Profile: domain.ProfileNorthTemperate},
	"prague":    {Index: 105, Country: "CZ", Profile: domain.ProfileNorthTemperate},
	"athens":    {Index: 105, Country: "GR", Profile: domain.ProfileNorthTemperate},

	// North America & Caribbean.
	"miami":       {Index: 155, Country: "US", Profile: domain.ProfileWinterEscape},
	"orlando":     {Index: 135, Country: "US", Profile: domain.ProfileWinterEscape},
	"las vegas":   {Index: 145, Country: "US", Profile: domain.ProfileNorthTemperate},
	"los angeles": {Index: 160, Country: "US", Profile: domain.ProfileNorthTemperate},
	"cancun":      {Index: 120, Country: "MX", Profile: domain.ProfileWinterEscape},
	"punta cana":  {Index: 125, Country: "DO", Profile: domain.ProfileWinterEscape},
	"mexico city": {Index: 80, Country: "MX", Profile: domain.ProfileSouthTropical},

	// South America.
	"buenos aires":         {Index: 95, Country: "AR", Profile: domain.ProfileSouthTropical},
	"santiago":             {Index: 115, Country: "CL", Profile: domain.ProfileSouthTropical},
	"mendoza":              {Index: 95, Country: "AR", Profile: domain.ProfileSouthTropical},
	"bariloche":            {Index: 120, Country: "AR", Profile: domain.ProfileSouthCold},
	"ushuaia":              {Index: 125, Country: "AR", Profile: domain.ProfileSouthCold},
	"cartagena":            {Index: 100, Country: "CO", Profile: domain.ProfileSouthTropical},
	"san pedro de atacama": {Index: 130, Country: "CL", Profile: domain.ProfileSouthTropical},
	"montevideo":           {Index: 115, Country: "UY", Profile: domain.ProfileSouthTropical},

	// Asia, Middle East, Oceania, Africa.
	"dubai":     {Index: 140, Country: "AE", Profile: domain.ProfileWinterEscape},
	"tokyo":     {Index: 150, Country: "JP", Profile: domain.ProfileNorthTemperate},
	"bangkok":   {Index: 75, Country: "TH", Profile: domain.ProfileWinterEscape},
	"bali":      {Index: 70, Country: "ID", Profile: domain.ProfileWinterEscape},
	"maldives":  {Index: 185, Country: "MV", Profile: domain.ProfileWinterEscape},
	"sydney":    {Index: 160, Country: "AU", Profile: domain.ProfileSouthTropical},
	"cape town": {Index: 95, Country: "ZA", Profile: domain.ProfileSouthTropical},

	// Brazil.
	"rio de janeiro":      {Index: 100, Country: "BR", Profile: domain.ProfileSouthTropical},
	"sao paulo":           {Index: 100, Country: "BR", Profile: domain.ProfileSouthTropical},
	"brasilia":            {Index: 100, Country: "BR", Profile: domain.ProfileSouthTropical},
	"salvador":            {Index: 90, Country: "BR", Profile: domain.ProfileSouthTropical},
	"recife":              {Index: 90, Country: "BR", Profile: domain.ProfileSouthTropical},
	"fortaleza":           {Index: 90, Country: "BR", Profile: domain.ProfileSouthTropical},
	"gramado":             {Index: 115, Country: "BR", Profile: domain.ProfileSouthCold},
	"trancoso":            {Index: 145, Country: "BR", Profile: domain.ProfileSouthTropical},
	"fernando de noronha": {Index: 170, Country: "BR", Profile: domain.ProfileSouthTropical},
	"jericoacoara":        {Index: 110, Country: "BR", Profile: domain.ProfileSouthTropical},
	"pipa":                {Index: 110, Country: "BR", Profile: domain.ProfileSouthTropical},
	"buzios":              {Index: 125, Country: "BR", Profile: domain.ProfileSouthTropical},
	"maragogi":            {Index: 115, Country: "BR", Profile: domain.ProfileSouthTropical},
	"porto de galinhas":   {Index: 105, Country: "BR", Profile: domain.ProfileSouthTropical},
	"balneario camboriu":  {Index: 110, Country: "BR", Profile: domain.ProfileSouthTropical},
	"florianopolis":       {Index: 100, Country: "BR", Profile: domain.ProfileSouthTropical},
	"campos do jordao":    {Index: 120, Country: "BR", Profile: domain.ProfileSouthCold},
	"foz do iguacu":       {Index: 85, Country: "BR", Profile: domain.ProfileSouthTropical},
	"jalapao":             {Index: 95, Country: "BR", Profile: domain.ProfileSouthTropical},
	"lencois maranhenses": {Index: 105, Country: "BR", Profile: domain.ProfileSouthTropical},
}

// destinationKeys is sorted longest-first (ties lexicographic) so substring
// matching is deterministic and "rio de janeiro" always wins over any
// shorter key hiding inside the same input.
var destinationKeys = func() []string {
	keys := make([]string, 0, len(destinations))
	for k := range destinations {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// MatchDestination looks up a normalized destination string in the curated
// dataset: exact match first, then the longest key contained in the input.
func MatchDestination(normalized string) (key string, d Destination, ok bool) {
	if d, ok := destinations[normalized]; ok {
		return normalized, d, true
	}
	for _, k := range destinationKeys {
		if strings.Contains(normalized, k) {
			return k, destinations[k], true
		}
	}
	return "", Destination{}, false
}
