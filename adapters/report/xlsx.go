package report

import (
	"io"
	"sort"

	"calsdt/domain/run"

	"github.com/xuri/excelize/v2"
)

const (
	resultsSheet = "Results"
	summarySheet = "Summary"
)

// writeXLSX writes a workbook with the ranked results and a summary sheet
func writeXLSX(w io.Writer, r *run.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &[]interface{}{"Rank", "Number", "Score"}); err != nil {
		return err
	}
	for i, e := range r.Results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultsSheet, cell, &[]interface{}{i + 1, e.Number, e.Score}); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Run", r.RunID.String()},
		{"Source", r.Source},
		{"Mode", r.Mode},
		{"Menh", r.Menh},
		{"Config hash", r.Fingerprint.ConfigHash.String()},
		{"Total", r.Total},
		{"Accepted", r.Accepted},
		{"Elapsed", r.Elapsed.String()},
		{"Mean", r.Stats.Mean},
		{"Median", r.Stats.Median},
		{"Std dev", r.Stats.StdDev},
		{"Min", r.Stats.Min},
		{"Max", r.Stats.Max},
	}
	reasons := make([]string, 0, len(r.Rejections))
	for reason := range r.Rejections {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		rows = append(rows, []interface{}{"Rejected: " + reason, r.Rejections[reason]})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
