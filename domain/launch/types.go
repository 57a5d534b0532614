package launch

// Outcome is the binary class label of a launch
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Label returns the grouping key used for outcome slices
func (o Outcome) Label() string {
	if o == OutcomeSuccess {
		return "success"
	}
	return "fail"
}

// IsSuccess reports whether the launch succeeded
func (o Outcome) IsSuccess() bool {
	return o == OutcomeSuccess
}

// LaunchRecord is one row of the launch table
type LaunchRecord struct {
	Site          string  `json:"launch_site"`
	PayloadMassKg float64 `json:"payload_mass_kg"`
	Outcome       Outcome `json:"class"`

	// Optional columns carried through when the source has them
	FlightNumber    int    `json:"flight_number,omitempty"`
	BoosterCategory string `json:"booster_version_category,omitempty"`
}

// SiteSelection is the dropdown value: SiteAll or one site identifier
type SiteSelection string

// SiteAll selects every launch site
const SiteAll SiteSelection = "ALL"

// IsAll reports whether the selection applies no site filter
func (s SiteSelection) IsAll() bool {
	return s == SiteAll
}

// Matches reports whether a record's site passes the selection
func (s SiteSelection) Matches(site string) bool {
	return s.IsAll() || string(s) == site
}

func (s SiteSelection) String() string { return string(s) }

// PayloadRange is the slider value, inclusive on both ends. An inverted range
// is a legal value that matches nothing.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether mass lies within [Low, High]
func (r PayloadRange) Contains(mass float64) bool {
	return r.Low <= mass && mass <= r.High
}

// IsInverted reports whether Low > High
func (r PayloadRange) IsInverted() bool {
	return r.Low > r.High
}
