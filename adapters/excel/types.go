package excel

// RawRowData represents a row of raw data as header to cell pairs
type RawRowData map[string]string

// ExcelData represents a complete table read from a CSV or workbook
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
	Lines   []int        // 1-based data row position of each Rows entry, blank rows counted
}

// RowNumber returns the source position of Rows[i]. Tables built without
// Lines number their rows consecutively.
func (d *ExcelData) RowNumber(i int) int {
	if i < len(d.Lines) {
		return d.Lines[i]
	}
	return i + 1
}

// HasHeader reports whether the table carries the named column
func (d *ExcelData) HasHeader(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Launch table columns
const (
	ColumnFlightNumber    = "Flight Number"
	ColumnLaunchSite      = "Launch Site"
	ColumnClass           = "class"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterCategory = "Booster Version Category"
)

// RequiredColumns must be present in every launch table
var RequiredColumns = []string{ColumnLaunchSite, ColumnPayloadMass, ColumnClass}
