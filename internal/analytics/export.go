package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/aalug/hiring-analytics-go/internal/apperror"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/pkg/validation"
	"github.com/xuri/excelize/v2"
)

// ExportFormat selects the file type of an exported report.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

const reportSheet = "Report"

// ParseExportFormat validates a requested format. An empty value means csv.
func ParseExportFormat(value string) (ExportFormat, error) {
	if value == "" {
		return FormatCSV, nil
	}
	if err := validation.ValidateOneOf("format", value, string(FormatCSV), string(FormatXLSX)); err != nil {
		return "", apperror.Validation("unsupported export format", err)
	}
	return ExportFormat(value), nil
}

// Report is an exported summary ready to be served as an attachment.
type Report struct {
	ContentType string
	Filename    string
	Data        []byte
}

type metric struct {
	name  string
	value int64
}

// summaryMetrics is the fixed row set of an exported summary.
func summaryMetrics(summary Summary) []metric {
	return []metric{
		{"Total Jobs", summary.TotalJobs},
		{"Open Jobs", summary.OpenJobs},
		{"Filled Jobs", summary.FilledJobs},
		{"Total Applications", summary.ApplicantsTotal},
		{"Interviews", summary.Interviews},
		{"Hires", summary.Hires},
	}
}

var exportHeader = []string{"Metric", "Value"}

// ToDelimitedText renders the summary as a two column csv table.
func ToDelimitedText(summary Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range summaryMetrics(summary) {
		if err := w.Write([]string{m.name, strconv.FormatInt(m.value, 10)}); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ToSpreadsheet writes the same rows as ToDelimitedText into a single sheet.
func ToSpreadsheet(summary Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]interface{}{{exportHeader[0], exportHeader[1]}}
	for _, m := range summaryMetrics(summary) {
		rows = append(rows, []interface{}{m.name, m.value})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("set row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportSummary computes the summary for the window and encodes it.
func (s *Service) ExportSummary(ctx context.Context, employerID db.EmployerID, params daterange.Params, format string) (Report, error) {
	exportFormat, err := ParseExportFormat(format)
	if err != nil {
		return Report{}, err
	}

	summary, err := s.Summary(ctx, employerID, params)
	if err != nil {
		return Report{}, err
	}

	switch exportFormat {
	case FormatXLSX:
		data, err := ToSpreadsheet(summary)
		if err != nil {
			return Report{}, apperror.Server("internal server error", err)
		}
		return Report{
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    "analytics-report.xlsx",
			Data:        data,
		}, nil
	default:
		data, err := ToDelimitedText(summary)
		if err != nil {
			return Report{}, apperror.Server("internal server error", err)
		}
		return Report{
			ContentType: "text/csv",
			Filename:    "analytics-report.csv",
			Data:        data,
		}, nil
	}
}
