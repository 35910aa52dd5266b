package domain

import "time"

// Style is a spending tier. Factors are strictly increasing from economy
// to luxury so a higher tier always costs more.
type Style string

const (
	StyleEconomy  Style = "economy"
	StyleModerate Style = "moderate"
	StyleComfort  Style = "comfort"
	StyleLuxury   Style = "luxury"
)

// Vibe is a trip-theme preset that reweights spend across categories.
type Vibe string

const (
	VibeMixed   Vibe = "mixed"
	VibeCulture Vibe = "culture"
	VibeGastro  Vibe = "gastro"
	VibeNature  Vibe = "nature"
	VibeParty   Vibe = "party"
	VibeFamily  Vibe = "family"
)

// Category is one spend bucket. Nightlife is estimated separately but folded
// into activities in the returned breakdown.
type Category string

const (
	CategoryLodging    Category = "lodging"
	CategoryFood       Category = "food"
	CategoryTransport  Category = "transport"
	CategoryActivities Category = "activities"
	CategoryNightlife  Category = "nightlife"
	CategoryMisc       Category = "misc"
)

// Confidence reflects where a destination's cost index came from:
// curated data (high), regional/geocoded inference (medium), or the
// last-resort global default (low).
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ClimateProfile groups destinations sharing the same yearly demand curve.
type ClimateProfile string

const (
	ProfileNorthTemperate ClimateProfile = "north-temperate"
	ProfileSouthTropical  ClimateProfile = "south-tropical"
	ProfileWinterEscape   ClimateProfile = "winter-escape"
	ProfileSouthCold      ClimateProfile = "south-cold"
	ProfileDefault        ClimateProfile = "default"
)

// CostIndex is a destination's relative daily-life price level versus the
// reference city at 100. Lower means cheaper.
type CostIndex struct {
	Value      float64    `json:"value"`
	Confidence Confidence `json:"confidence"`
}

// StyleProfile drives both the general cost multiplier and the hotel price
// percentile targeted by the accommodation curve.
type StyleProfile struct {
	Factor          float64
	HotelPercentile float64
}

// FXQuote is a resolved currency rate. Base==Quote always carries rate 1.0.
type FXQuote struct {
	Base       string    `json:"base"`
	Quote      string    `json:"quote"`
	Rate       float64   `json:"rate"`
	ResolvedAt time.Time `json:"resolved_at"`
	Source     string    `json:"source"`
}

// GeoResult is what the forward geocoder returns for a free-text place.
type GeoResult struct {
	Found       bool
	Lat, Lon    float64
	CountryCode string // ISO 3166-1 alpha-2, upper case
	Subdivision string // administrative subdivision (e.g. US state), if any
	DisplayName string
}

// Holiday is a public holiday overlapping the trip window.
type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// EstimateRequest carries validated caller input for one estimate.
// Start is optional; without it the seasonal factor is neutral.
type EstimateRequest struct {
	Destination string
	Days        int
	Travelers   int
	Style       Style
	Vibe        Vibe
	Currency    string
	Start       *time.Time
}

// Breakdown is the categorized result in the target currency.
// The category sum equals Total within floating-point rounding.
type Breakdown struct {
	Lodging    float64 `json:"lodging"`
	Food       float64 `json:"food"`
	Transport  float64 `json:"transport"`
	Activities float64 `json:"activities"`
	Misc       float64 `json:"misc"`
}

func (b Breakdown) Sum() float64 {
	return b.Lodging + b.Food + b.Transport + b.Activities + b.Misc
}

// EstimateResult is the full outcome of one estimate call. Audit explains
// every fallback and resolution decision in order.
type EstimateResult struct {
	Destination    string       `json:"destination"`
	Currency       string       `json:"currency"`
	Total          float64      `json:"total"`
	DailyPerPerson float64      `json:"daily_per_person"`
	RangeLow       float64      `json:"range_low"`
	RangeHigh      float64      `json:"range_high"`
	Breakdown      Breakdown    `json:"breakdown"`
	Confidence     Confidence   `json:"confidence"`
	Holidays       []Holiday    `json:"holidays,omitempty"`
	Audit          []AuditEntry `json:"audit"`
}
