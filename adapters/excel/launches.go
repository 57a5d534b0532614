package excel

import (
	"fmt"
	"log"
	"math"
	"strconv"

	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal/errors"
)

// LoadDataset reads the launch table at path. A missing file fails with
// FILE_NOT_FOUND; missing columns or bad cells fail with PARSE_ERROR.
func LoadDataset(path string) (*launch.Dataset, error) {
	data, err := NewDataReader(path).ReadData()
	if err != nil {
		return nil, err
	}

	records, err := ParseLaunchRecords(data)
	if err != nil {
		return nil, errors.ParseError(path, err)
	}

	ds, err := launch.NewDataset(path, records)
	if err != nil {
		return nil, errors.ParseError(path, err)
	}

	log.Printf("[LoadDataset] Loaded %d launches across %d sites from %s", ds.Len(), len(ds.Sites()), path)
	return ds, nil
}

// ParseLaunchRecords converts raw rows into launch records, in row order
func ParseLaunchRecords(data *ExcelData) ([]launch.LaunchRecord, error) {
	for _, col := range RequiredColumns {
		if !data.HasHeader(col) {
			return nil, core.NewMissingColumnError(col)
		}
	}
	if len(data.Rows) == 0 {
		return nil, core.ErrNoRecords
	}

	records := make([]launch.LaunchRecord, 0, len(data.Rows))
	for i, row := range data.Rows {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", data.RowNumber(i), err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row RawRowData) (launch.LaunchRecord, error) {
	site := row[ColumnLaunchSite]
	if site == "" {
		return launch.LaunchRecord{}, fmt.Errorf("column %q: %w", ColumnLaunchSite, core.ErrMissingValue)
	}

	payload, err := parsePayload(row[ColumnPayloadMass])
	if err != nil {
		return launch.LaunchRecord{}, fmt.Errorf("column %q: %w", ColumnPayloadMass, err)
	}

	outcome, err := parseOutcome(row[ColumnClass])
	if err != nil {
		return launch.LaunchRecord{}, fmt.Errorf("column %q: %w", ColumnClass, err)
	}

	rec := launch.LaunchRecord{
		Site:            site,
		PayloadMassKg:   payload,
		Outcome:         outcome,
		BoosterCategory: row[ColumnBoosterCategory],
	}
	if v, err := strconv.ParseFloat(row[ColumnFlightNumber], 64); err == nil {
		rec.FlightNumber = int(v)
	}
	return rec, nil
}

func parsePayload(raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: empty", core.ErrInvalidPayload)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", core.ErrInvalidPayload, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidPayload, raw)
	}
	return v, nil
}

// parseOutcome accepts 0/1 and their float spellings
func parseOutcome(raw string) (launch.Outcome, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidOutcome, raw)
	}
	switch v {
	case 0:
		return launch.OutcomeFailure, nil
	case 1:
		return launch.OutcomeSuccess, nil
	default:
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidOutcome, raw)
	}
}
