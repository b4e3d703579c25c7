package report

import (
	"fmt"
	"io"
	"sort"

	"calsdt/domain/run"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// resultsTable builds the ranked results table shared by the console and HTML reports
func resultsTable(r *run.Report) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Number", "Score"})
	for i, e := range r.Results {
		t.AppendRow(table.Row{i + 1, e.Number, fmt.Sprintf("%.2f", e.Score)})
	}
	t.AppendFooter(table.Row{"", "accepted", fmt.Sprintf("%d / %d", r.Accepted, r.Total)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return t
}

// rejectionsTable lists reject counts by reason, most frequent first
func rejectionsTable(r *run.Report) table.Writer {
	reasons := make([]string, 0, len(r.Rejections))
	for reason := range r.Rejections {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool {
		a, b := r.Rejections[reasons[i]], r.Rejections[reasons[j]]
		if a != b {
			return a > b
		}
		return reasons[i] < reasons[j]
	})

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Reason", "Rejected"})
	for _, reason := range reasons {
		t.AppendRow(table.Row{reason, r.Rejections[reason]})
	}
	return t
}

func writeTable(w io.Writer, r *run.Report) error {
	t := resultsTable(r)
	t.SetStyle(table.StyleLight)
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if len(r.Rejections) == 0 {
		return nil
	}
	rt := rejectionsTable(r)
	rt.SetStyle(table.StyleLight)
	_, err := fmt.Fprintln(w, rt.Render())
	return err
}
