package launch

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// SiteSummary holds descriptive statistics for one group of launches
type SiteSummary struct {
	Site          string  `json:"site"`
	Launches      int     `json:"launches"`
	Successes     int     `json:"successes"`
	SuccessRate   float64 `json:"success_rate"`
	PayloadMean   float64 `json:"payload_mean_kg"`
	PayloadMedian float64 `json:"payload_median_kg"`
	PayloadMin    float64 `json:"payload_min_kg"`
	PayloadMax    float64 `json:"payload_max_kg"`
	PayloadQ75    float64 `json:"payload_q75_kg"`

	// Correlation is Pearson's r between payload and class; nil when either
	// variable is constant or there are fewer than two launches.
	Correlation *float64 `json:"payload_outcome_correlation,omitempty"`
}

// Summary is the statistics view for a site selection
type Summary struct {
	Selection SiteSelection `json:"selection"`
	Overall   SiteSummary   `json:"overall"`
	Sites     []SiteSummary `json:"sites"`
}

// Summarize computes per-site statistics for the selected records. ALL yields
// one entry per site plus the overall row; an unknown site yields a zero
// overall row and no entries.
func Summarize(ds *Dataset, selection SiteSelection) Summary {
	bySite := make(map[string][]LaunchRecord)
	var all []LaunchRecord
	ds.each(func(rec LaunchRecord) {
		if !selection.Matches(rec.Site) {
			return
		}
		bySite[rec.Site] = append(bySite[rec.Site], rec)
		all = append(all, rec)
	})

	summary := Summary{
		Selection: selection,
		Overall:   summarizeGroup(string(selection), all),
		Sites:     []SiteSummary{},
	}
	for _, site := range ds.Sites() {
		if recs, ok := bySite[site]; ok {
			summary.Sites = append(summary.Sites, summarizeGroup(site, recs))
		}
	}
	return summary
}

func summarizeGroup(name string, recs []LaunchRecord) SiteSummary {
	s := SiteSummary{Site: name, Launches: len(recs)}
	if len(recs) == 0 {
		return s
	}

	payloads := make([]float64, len(recs))
	classes := make([]float64, len(recs))
	for i, rec := range recs {
		payloads[i] = rec.PayloadMassKg
		classes[i] = float64(rec.Outcome)
		if rec.Outcome.IsSuccess() {
			s.Successes++
		}
	}
	s.SuccessRate = float64(s.Successes) / float64(s.Launches)

	s.PayloadMean, _ = stats.Mean(payloads)
	s.PayloadMedian, _ = stats.Median(payloads)
	s.PayloadMin, _ = stats.Min(payloads)
	s.PayloadMax, _ = stats.Max(payloads)
	// Percentile has no answer for very small groups
	if q75, err := stats.Percentile(payloads, 75); err == nil && !math.IsNaN(q75) {
		s.PayloadQ75 = q75
	} else {
		s.PayloadQ75 = s.PayloadMax
	}

	if len(recs) >= 2 {
		r := stat.Correlation(payloads, classes, nil)
		if !math.IsNaN(r) && !math.IsInf(r, 0) {
			s.Correlation = &r
		}
	}
	return s
}
