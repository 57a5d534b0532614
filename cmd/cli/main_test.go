package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/domain/launch"
)

const launchesCSV = `Flight Number,Launch Site,class,Payload Mass (kg),Booster Version Category
1,CCAFS LC-40,1,500,v1.0
2,CCAFS LC-40,0,2000,v1.1
3,KSC LC-39A,1,3000,FT
`

func useLaunches(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launches.csv")
	require.NoError(t, os.WriteFile(path, []byte(launchesCSV), 0644))
	t.Setenv("DATA_FILE", path)
}

func execute(args ...string) (string, error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestOutcomes(t *testing.T) {
	useLaunches(t)

	t.Run("table", func(t *testing.T) {
		out, err := execute("outcomes", "--site", "ALL", "--format", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "Success vs. Failure Launches (All Sites)")
		assert.Contains(t, out, "CCAFS LC-40")
		assert.Contains(t, out, "66.7%")
	})

	t.Run("json for one site", func(t *testing.T) {
		out, err := execute("outcomes", "--site", "CCAFS LC-40", "--format", "json")
		require.NoError(t, err)

		var g launch.OutcomeGrouping
		require.NoError(t, json.Unmarshal([]byte(out), &g))
		assert.Equal(t, map[string]int{"success": 1, "fail": 1}, g.Counts())
		assert.Equal(t, 2, g.Total)
		assert.False(t, g.ShowLabels)
	})
}

func TestScatter(t *testing.T) {
	useLaunches(t)

	out, err := execute("scatter", "--site", "ALL", "--low", "1000", "--high", "2500", "--format", "json")
	require.NoError(t, err)

	var res launch.ScatterResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Points, 1)
	assert.Equal(t, 2000.0, res.Points[0].PayloadMassKg)
	assert.Equal(t, launch.OutcomeFailure, res.Points[0].Outcome)

	out, err = execute("scatter", "--site", "ALL", "--low", "5000", "--high", "1000", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "0 launches")
}

func TestSummary_YAML(t *testing.T) {
	useLaunches(t)

	out, err := execute("summary", "--site", "ALL", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "selection: ALL")
	assert.Contains(t, out, "launches: 3")
	assert.Contains(t, out, "site: KSC LC-39A")
	assert.NotContains(t, out, "{")
}

func TestSites(t *testing.T) {
	useLaunches(t)

	out, err := execute("sites", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "All Sites")
	assert.Contains(t, out, "KSC LC-39A")
	assert.Contains(t, out, "500 - 3000 kg")
}

func TestErrors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		useLaunches(t)
		_, err := execute("outcomes", "--site", "ALL", "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})

	t.Run("missing data file", func(t *testing.T) {
		t.Setenv("DATA_FILE", filepath.Join(t.TempDir(), "absent.csv"))
		_, err := execute("outcomes", "--site", "ALL", "--format", "table")
		require.Error(t, err)
	})
}
