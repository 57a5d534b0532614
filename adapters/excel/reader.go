package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"launchdash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader; .xlsx files go through excelize, anything
// else is read as CSV
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadData reads the file into headers and string rows
func (r *DataReader) ReadData() (*ExcelData, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.FileNotFound(r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, errors.ParseError(r.filePath, fmt.Errorf("unsupported file type: %s", r.fileType))
	}
}

// readExcelData reads the first sheet of a workbook
func (r *DataReader) readExcelData() (*ExcelData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ParseError(r.filePath, fmt.Errorf("failed to open Excel file: %w", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ParseError(r.filePath, fmt.Errorf("workbook has no sheets"))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ParseError(r.filePath, fmt.Errorf("failed to read %s: %w", sheets[0], err))
	}
	log.Printf("[DataReader] %s read in %.2fms (%d rows)", sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData() (*ExcelData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.ParseError(r.filePath, fmt.Errorf("failed to open CSV file: %w", err))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseError(r.filePath, fmt.Errorf("failed to read CSV file: %w", err))
	}
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// processRows converts raw string rows into ExcelData format
func (r *DataReader) processRows(rows [][]string) (*ExcelData, error) {
	if len(rows) < 2 {
		return nil, errors.ParseError(r.filePath,
			fmt.Errorf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType)))
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	lines := make([]int, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rowData := make(RawRowData, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
		lines = append(lines, i+1)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &ExcelData{
		Headers: headers,
		Rows:    dataRows,
		Lines:   lines,
	}, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
