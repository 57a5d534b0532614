package launch

import "fmt"

// GroupBy names the key an outcome grouping was built on
type GroupBy string

const (
	GroupBySite    GroupBy = "site"
	GroupByOutcome GroupBy = "outcome"
)

// Slice is one proportional wedge of the donut
type Slice struct {
	Key     string  `json:"key"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// OutcomeGrouping is the donut data for one site selection
type OutcomeGrouping struct {
	Selection SiteSelection `json:"selection"`
	GroupBy   GroupBy       `json:"group_by"`
	Slices    []Slice       `json:"slices"`
	Total     int           `json:"total"`

	// ShowLabels is display policy: per-site donuts render percentages only
	ShowLabels bool `json:"show_labels"`
}

// IsEmpty reports whether there is nothing to draw
func (g OutcomeGrouping) IsEmpty() bool {
	return g.Total == 0
}

// Counts returns the key to count mapping
func (g OutcomeGrouping) Counts() map[string]int {
	counts := make(map[string]int, len(g.Slices))
	for _, s := range g.Slices {
		counts[s.Key] = s.Count
	}
	return counts
}

// Title is the chart heading for this grouping
func (g OutcomeGrouping) Title() string {
	if g.Selection.IsAll() {
		return "Success vs. Failure Launches (All Sites)"
	}
	return fmt.Sprintf("Success vs. Failure Launches (%s)", g.Selection)
}

// AggregateOutcomes builds the donut grouping. ALL groups every record by
// site; a concrete site groups that site's records by outcome. Slices keep
// first-appearance order, and a selection matching no record gives an empty
// grouping.
func AggregateOutcomes(ds *Dataset, selection SiteSelection) OutcomeGrouping {
	g := OutcomeGrouping{
		Selection:  selection,
		GroupBy:    GroupByOutcome,
		Slices:     []Slice{},
		ShowLabels: false,
	}
	if selection.IsAll() {
		g.GroupBy = GroupBySite
		g.ShowLabels = true
	}

	index := make(map[string]int)
	ds.each(func(rec LaunchRecord) {
		var key string
		if selection.IsAll() {
			key = rec.Site
		} else {
			if rec.Site != string(selection) {
				return
			}
			key = rec.Outcome.Label()
		}

		i, ok := index[key]
		if !ok {
			i = len(g.Slices)
			index[key] = i
			g.Slices = append(g.Slices, Slice{Key: key})
		}
		g.Slices[i].Count++
		g.Total++
	})

	for i := range g.Slices {
		g.Slices[i].Percent = 100 * float64(g.Slices[i].Count) / float64(g.Total)
	}
	return g
}
