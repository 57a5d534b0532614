package launch

import "fmt"

// ScatterResult is the filtered point set for the payload chart
type ScatterResult struct {
	Selection SiteSelection  `json:"selection"`
	Range     PayloadRange   `json:"range"`
	Points    []LaunchRecord `json:"points"`
}

// Title is the chart heading for this result
func (r ScatterResult) Title() string {
	return fmt.Sprintf("Success vs Payload Mass (%s)", r.Selection)
}

// FilterScatter returns the records with payload inside rng (inclusive) and,
// for a concrete selection, launched from that site. Output keeps dataset
// order and is never nil.
func FilterScatter(ds *Dataset, selection SiteSelection, rng PayloadRange) []LaunchRecord {
	points := []LaunchRecord{}
	if rng.IsInverted() {
		return points
	}
	ds.each(func(rec LaunchRecord) {
		if rng.Contains(rec.PayloadMassKg) && selection.Matches(rec.Site) {
			points = append(points, rec)
		}
	})
	return points
}

// Scatter wraps FilterScatter with the inputs that produced it
func Scatter(ds *Dataset, selection SiteSelection, rng PayloadRange) ScatterResult {
	return ScatterResult{
		Selection: selection,
		Range:     rng,
		Points:    FilterScatter(ds, selection, rng),
	}
}
