package report

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"calsdt/domain/run"
)

// writeText emits one "NUMBER  score=X.XX" line per result, best first
func writeText(w io.Writer, r *run.Report) error {
	bw := bufio.NewWriter(w)
	for _, e := range r.Results {
		if _, err := fmt.Fprintf(bw, "%s  score=%.2f\n", e.Number, e.Score); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeCSV(w io.Writer, r *run.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "number", "score"}); err != nil {
		return err
	}
	for i, e := range r.Results {
		record := []string{strconv.Itoa(i + 1), e.Number, strconv.FormatFloat(e.Score, 'f', -1, 64)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, r *run.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
