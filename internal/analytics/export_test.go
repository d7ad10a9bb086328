package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/aalug/hiring-analytics-go/internal/apperror"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestToDelimitedText(t *testing.T) {
	summary := Summary{
		TotalJobs:       6,
		OpenJobs:        3,
		FilledJobs:      1,
		ArchivedJobs:    1,
		ApplicantsTotal: 12,
		Interviews:      4,
		Hires:           2,
		Shortlisted:     5,
	}

	data, err := ToDelimitedText(summary)
	require.NoError(t, err)
	require.Equal(t, "Metric,Value\n"+
		"Total Jobs,6\n"+
		"Open Jobs,3\n"+
		"Filled Jobs,1\n"+
		"Total Applications,12\n"+
		"Interviews,4\n"+
		"Hires,2\n", string(data))
}

func TestToSpreadsheet(t *testing.T) {
	data, err := ToSpreadsheet(Summary{TotalJobs: 6, Hires: 2})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	require.Equal(t, []string{"Metric", "Value"}, rows[0])
	require.Equal(t, []string{"Total Jobs", "6"}, rows[1])
	require.Equal(t, []string{"Hires", "2"}, rows[6])
}

func TestParseExportFormat(t *testing.T) {
	format, err := ParseExportFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, format)

	format, err = ParseExportFormat("xlsx")
	require.NoError(t, err)
	require.Equal(t, FormatXLSX, format)

	_, err = ParseExportFormat("pdf")
	require.Error(t, err)
	require.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestExportSummary(t *testing.T) {
	service := newFixtureService(pipelineFixture())
	ctx := context.Background()

	report, err := service.ExportSummary(ctx, employerA, daterange.Params{}, "csv")
	require.NoError(t, err)
	require.Equal(t, "text/csv", report.ContentType)
	require.Equal(t, "analytics-report.csv", report.Filename)
	require.Contains(t, string(report.Data), "Total Jobs,6\n")
	require.Contains(t, string(report.Data), "Total Applications,6\n")

	report, err = service.ExportSummary(ctx, employerA, daterange.Params{}, "xlsx")
	require.NoError(t, err)
	require.Equal(t, "analytics-report.xlsx", report.Filename)
	require.NotEmpty(t, report.Data)

	_, err = service.ExportSummary(ctx, employerA, daterange.Params{}, "pdf")
	require.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = service.ExportSummary(ctx, employerA, daterange.Params{Start: "not-a-date"}, "csv")
	require.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
