package launch

import (
	"fmt"
	"math"
	"sort"

	"launchdash/domain/core"
)

// Dataset is the immutable, ordered launch table. It is built once and shared
// read-only; all accessors are safe for concurrent use.
type Dataset struct {
	id      core.DatasetID
	source  string
	records []LaunchRecord
	sites   []string
	bounds  PayloadRange
}

// NewDataset validates and freezes records. The slice is copied so later
// changes by the caller do not leak in.
func NewDataset(source string, records []LaunchRecord) (*Dataset, error) {
	owned := make([]LaunchRecord, len(records))
	copy(owned, records)

	seen := make(map[string]bool)
	var sites []string
	bounds := PayloadRange{}
	for i, rec := range owned {
		if math.IsNaN(rec.PayloadMassKg) || math.IsInf(rec.PayloadMassKg, 0) || rec.PayloadMassKg < 0 {
			return nil, core.NewRowError(i+1, "Payload Mass (kg)",
				fmt.Errorf("%w: %v", core.ErrInvalidPayload, rec.PayloadMassKg))
		}
		if rec.Outcome != OutcomeFailure && rec.Outcome != OutcomeSuccess {
			return nil, core.NewRowError(i+1, "class",
				fmt.Errorf("%w: %d", core.ErrInvalidOutcome, rec.Outcome))
		}
		if !seen[rec.Site] {
			seen[rec.Site] = true
			sites = append(sites, rec.Site)
		}
		if i == 0 {
			bounds = PayloadRange{Low: rec.PayloadMassKg, High: rec.PayloadMassKg}
			continue
		}
		bounds.Low = math.Min(bounds.Low, rec.PayloadMassKg)
		bounds.High = math.Max(bounds.High, rec.PayloadMassKg)
	}
	sort.Strings(sites)

	return &Dataset{
		id:      core.NewDatasetID(),
		source:  source,
		records: owned,
		sites:   sites,
		bounds:  bounds,
	}, nil
}

// ID identifies this load of the data
func (d *Dataset) ID() core.DatasetID { return d.id }

// Source is the path the records were read from
func (d *Dataset) Source() string { return d.source }

// Len returns the number of records
func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of all records in load order
func (d *Dataset) Records() []LaunchRecord {
	out := make([]LaunchRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Sites returns the distinct launch sites, sorted
func (d *Dataset) Sites() []string {
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}

// HasSite reports whether any record was launched from site
func (d *Dataset) HasSite(site string) bool {
	i := sort.SearchStrings(d.sites, site)
	return i < len(d.sites) && d.sites[i] == site
}

// PayloadBounds returns the observed [min, max] payload mass. Both are zero
// for an empty dataset.
func (d *Dataset) PayloadBounds() PayloadRange { return d.bounds }

// each visits records in load order without copying
func (d *Dataset) each(fn func(LaunchRecord)) {
	for _, rec := range d.records {
		fn(rec)
	}
}
