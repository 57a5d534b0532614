package ui

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/errors"
)

func testDataset(t *testing.T) *launch.Dataset {
	t.Helper()
	ds, err := launch.NewDataset("ui", []launch.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadMassKg: 500, Outcome: launch.OutcomeFailure},
		{Site: "CCAFS LC-40", PayloadMassKg: 1500, Outcome: launch.OutcomeSuccess},
		{Site: "KSC LC-39A", PayloadMassKg: 3000, Outcome: launch.OutcomeSuccess},
	})
	require.NoError(t, err)
	return ds
}

func testOptions() Options {
	return Options{
		GinMode:     "test",
		ChartWidth:  320,
		ChartHeight: 240,
		Logger:      internal.NewLoggerTo(io.Discard, internal.LogLevelError),
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(testDataset(t), testOptions())
	require.NoError(t, err)
	return s
}

func get(t *testing.T, h http.Handler, path string, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestServer_Index(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s.Handler(), "/", url.Values{"site": {"KSC LC-39A"}})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "SpaceX Launch Records Dashboard")
	assert.Contains(t, body, "All Sites")
	assert.Contains(t, body, `<option value="KSC LC-39A" selected>`)
	assert.Contains(t, body, `min="500"`)
	assert.Contains(t, body, `max="3000"`)
}

func TestServer_Outcomes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		site string
		want map[string]int
	}{
		{"default is all", "", map[string]int{"CCAFS LC-40": 2, "KSC LC-39A": 1}},
		{"explicit all", "ALL", map[string]int{"CCAFS LC-40": 2, "KSC LC-39A": 1}},
		{"one site", "CCAFS LC-40", map[string]int{"fail": 1, "success": 1}},
		{"unknown site", "Boca Chica", map[string]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s.Handler(), "/api/outcomes", url.Values{"site": {tt.site}})
			require.Equal(t, http.StatusOK, w.Code)

			var g launch.OutcomeGrouping
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
			assert.Equal(t, tt.want, g.Counts())
		})
	}
}

func TestServer_Scatter(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		params   url.Values
		wantMass []float64
	}{
		{"band across sites", url.Values{"low": {"1000"}, "high": {"3000"}}, []float64{1500, 3000}},
		{"site outside band", url.Values{"site": {"KSC LC-39A"}, "low": {"0"}, "high": {"1000"}}, []float64{}},
		{"inverted range", url.Values{"low": {"3000"}, "high": {"1000"}}, []float64{}},
		{"defaults to full range", url.Values{}, []float64{500, 1500, 3000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s.Handler(), "/api/scatter", tt.params)
			require.Equal(t, http.StatusOK, w.Code)

			var res launch.ScatterResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			require.NotNil(t, res.Points, "points encode as [] not null")
			mass := make([]float64, 0, len(res.Points))
			for _, p := range res.Points {
				mass = append(mass, p.PayloadMassKg)
			}
			assert.Equal(t, tt.wantMass, mass)
		})
	}
}

func TestServer_ScatterRejectsBadNumbers(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s.Handler(), "/api/scatter", url.Values{"low": {"heavy"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, errors.CodeInvalidInput, body["code"])
}

func TestServer_Charts(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		path        string
		params      url.Values
		wantStatus  int
		contentType string
	}{
		{"/charts/outcomes.svg", url.Values{"site": {"ALL"}}, http.StatusOK, "image/svg+xml"},
		{"/charts/outcomes.svg", url.Values{"site": {"Boca Chica"}}, http.StatusOK, "image/svg+xml"},
		{"/charts/scatter.png", url.Values{"low": {"0"}, "high": {"2000"}}, http.StatusOK, "image/png"},
		{"/charts/scatter.svg", url.Values{"low": {"x"}}, http.StatusBadRequest, ""},
		{"/charts/outcomes.gif", nil, http.StatusBadRequest, ""},
		{"/charts/pie.svg", nil, http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, s.Handler(), tt.path, tt.params)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
				assert.NotZero(t, w.Body.Len())
			}
		})
	}
}

func TestServer_ReportExportHealth(t *testing.T) {
	s := newTestServer(t)

	report := get(t, s.Handler(), "/report", url.Values{"site": {"CCAFS LC-40"}})
	require.Equal(t, http.StatusOK, report.Code)
	assert.Contains(t, report.Body.String(), "<table>")
	assert.Contains(t, report.Body.String(), "Launch report: CCAFS LC-40")

	export := get(t, s.Handler(), "/api/export.xlsx", url.Values{"low": {"1000"}})
	require.Equal(t, http.StatusOK, export.Code)
	assert.Equal(t, xlsxContentType, export.Header().Get("Content-Type"))
	assert.Contains(t, export.Header().Get("Content-Disposition"), "launches.xlsx")

	health := get(t, s.Handler(), "/healthz", nil)
	require.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"records":3`)
	assert.NotEmpty(t, health.Header().Get("X-Request-ID"))
}

func TestServer_ReportEscapesSelection(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		site string
	}{
		{"image tag", "<img src=x onerror=alert(1)>"},
		{"script tag", "<script>alert(1)</script>"},
		{"table breakout", "x | <b>y</b>\n# z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s.Handler(), "/report", url.Values{"site": {tt.site}})
			require.Equal(t, http.StatusOK, w.Code)

			body := w.Body.String()
			assert.NotContains(t, body, "<img src=x")
			assert.NotContains(t, body, "<script>")
			assert.NotContains(t, body, "<b>")
			assert.Contains(t, body, "&lt;")
		})
	}
}

func TestServer_SitesAndSlider(t *testing.T) {
	s := newTestServer(t)

	var sites []launch.SiteOption
	w := get(t, s.Handler(), "/api/sites", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sites))
	assert.Equal(t, "ALL", sites[0].Value)
	assert.Len(t, sites, 3)

	var slider launch.SliderSpec
	w = get(t, s.Handler(), "/api/slider", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slider))
	assert.Equal(t, 500.0, slider.Min)
	assert.Equal(t, 3000.0, slider.Max)
	assert.Equal(t, 1000.0, slider.Step)
}

func TestApp_API(t *testing.T) {
	app := NewApp(testDataset(t), testOptions())

	w := get(t, app, "/api/outcomes", url.Values{"site": {"CCAFS LC-40"}})
	require.Equal(t, http.StatusOK, w.Code)
	var g launch.OutcomeGrouping
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Equal(t, map[string]int{"fail": 1, "success": 1}, g.Counts())

	w = get(t, app, "/api/scatter", url.Values{"low": {"1000"}, "high": {"3000"}})
	require.Equal(t, http.StatusOK, w.Code)
	var res launch.ScatterResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Points, 2)

	w = get(t, app, "/api/scatter", url.Values{"high": {"lots"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(t, app, "/api/summary", url.Values{"site": {"KSC LC-39A"}})
	require.Equal(t, http.StatusOK, w.Code)
	var summary launch.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Overall.Launches)

	w = get(t, app, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
