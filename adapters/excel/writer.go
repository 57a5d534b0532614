package excel

import (
	"fmt"
	"io"

	"launchdash/domain/launch"

	"github.com/xuri/excelize/v2"
)

// ExportSheet is the sheet name used for exported launch tables
const ExportSheet = "Launches"

// WriteLaunches writes records as a single-sheet workbook whose header matches
// the launch table, so the result can be loaded back with LoadDataset
func WriteLaunches(w io.Writer, records []launch.LaunchRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{ColumnFlightNumber, ColumnLaunchSite, ColumnClass, ColumnPayloadMass, ColumnBoosterCategory}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{rec.FlightNumber, rec.Site, int(rec.Outcome), rec.PayloadMassKg, rec.BoosterCategory}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
