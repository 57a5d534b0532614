package services

import (
	"math"
	"strconv"
	"strings"

	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/errors"
)

// QueryService turns raw control values into aggregator calls against the
// injected dataset. It holds no per-request state.
type QueryService struct {
	dataset *launch.Dataset
	slider  launch.SliderSpec
	logger  *internal.Logger
}

func NewQueryService(ds *launch.Dataset, sliderStep float64, markEvery int, logger *internal.Logger) *QueryService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &QueryService{
		dataset: ds,
		slider:  launch.NewSliderSpec(ds, sliderStep, markEvery),
		logger:  logger,
	}
}

// Dataset returns the dataset all queries run against
func (s *QueryService) Dataset() *launch.Dataset {
	return s.dataset
}

// Selection reads the dropdown value; blank means ALL. Unknown sites pass
// through and simply match nothing.
func (s *QueryService) Selection(raw string) launch.SiteSelection {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return launch.SiteAll
	}
	return launch.SiteSelection(raw)
}

// Range reads the slider value. Missing ends default to the slider bounds;
// values are not clamped or reordered.
func (s *QueryService) Range(lowRaw, highRaw string) (launch.PayloadRange, error) {
	rng := s.slider.Value

	low, err := parseBound("low", lowRaw, rng.Low)
	if err != nil {
		return launch.PayloadRange{}, err
	}
	high, err := parseBound("high", highRaw, rng.High)
	if err != nil {
		return launch.PayloadRange{}, err
	}
	return launch.PayloadRange{Low: low, High: high}, nil
}

func parseBound(name, raw string, fallback float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		appErr := errors.InvalidInput(name + " must be a number, got " + strconv.Quote(raw))
		appErr.Cause = core.ErrInvalidBound
		return 0, appErr
	}
	return v, nil
}

// Sites returns the dropdown options
func (s *QueryService) Sites() []launch.SiteOption {
	return launch.SiteOptions(s.dataset)
}

// Slider returns the slider contract
func (s *QueryService) Slider() launch.SliderSpec {
	return s.slider
}

// Outcomes runs the donut aggregation
func (s *QueryService) Outcomes(sel launch.SiteSelection) launch.OutcomeGrouping {
	g := launch.AggregateOutcomes(s.dataset, sel)
	s.logger.Debug("[QueryService] outcomes site=%q slices=%d total=%d", sel, len(g.Slices), g.Total)
	return g
}

// Scatter runs the payload filter
func (s *QueryService) Scatter(sel launch.SiteSelection, rng launch.PayloadRange) launch.ScatterResult {
	res := launch.Scatter(s.dataset, sel, rng)
	s.logger.Debug("[QueryService] scatter site=%q range=[%g, %g] points=%d", sel, rng.Low, rng.High, len(res.Points))
	return res
}

// Summary computes per-site statistics
func (s *QueryService) Summary(sel launch.SiteSelection) launch.Summary {
	return launch.Summarize(s.dataset, sel)
}
