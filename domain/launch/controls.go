package launch

import (
	"math"
	"strconv"
)

const (
	DefaultSliderStep      = 1000.0
	DefaultSliderMarkEvery = 5000
)

// maxSliderMarks caps the mark count; wider payload spans get sparser marks
const maxSliderMarks = 50

// maxMarkValue is the largest mark value a float64 still holds exactly
const maxMarkValue = 1 << 53

// SiteOption is one dropdown entry
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SiteOptions lists "All Sites" followed by every site in the dataset
func SiteOptions(ds *Dataset) []SiteOption {
	sites := ds.Sites()
	options := make([]SiteOption, 0, len(sites)+1)
	options = append(options, SiteOption{Label: "All Sites", Value: string(SiteAll)})
	for _, site := range sites {
		options = append(options, SiteOption{Label: site, Value: site})
	}
	return options
}

// SliderMark is a labelled tick on the payload slider
type SliderMark struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// SliderSpec describes the payload range slider for a dataset
type SliderSpec struct {
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []SliderMark `json:"marks"`
	Value PayloadRange `json:"value"`
}

// NewSliderSpec bounds the slider by the observed payload range. Marks start
// at int(min) and repeat every markEvery up to int(max), spaced further apart
// when that would exceed maxSliderMarks. Non-positive step or markEvery fall
// back to the defaults.
func NewSliderSpec(ds *Dataset, step float64, markEvery int) SliderSpec {
	if step <= 0 {
		step = DefaultSliderStep
	}
	if markEvery <= 0 {
		markEvery = DefaultSliderMarkEvery
	}
	bounds := ds.PayloadBounds()

	return SliderSpec{
		Min:   bounds.Low,
		Max:   bounds.High,
		Step:  step,
		Marks: sliderMarks(bounds, markEvery),
		Value: bounds,
	}
}

func sliderMarks(bounds PayloadRange, markEvery int) []SliderMark {
	low, high := math.Trunc(bounds.Low), math.Trunc(bounds.High)
	if high > maxMarkValue {
		return nil
	}

	every := float64(markEvery)
	if span := high - low; span/every >= maxSliderMarks {
		every = math.Ceil(span / (maxSliderMarks - 1))
	}

	var marks []SliderMark
	for v := low; v <= high; v += every {
		n := int(v)
		marks = append(marks, SliderMark{Value: n, Label: strconv.Itoa(n)})
	}
	return marks
}

// Clamp snaps each end of rng to the nearest step above Min and keeps it
// within [Min, Max]. Ordering is left alone: an inverted range stays inverted.
func (s SliderSpec) Clamp(rng PayloadRange) PayloadRange {
	return PayloadRange{Low: s.snap(rng.Low), High: s.snap(rng.High)}
}

func (s SliderSpec) snap(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}
