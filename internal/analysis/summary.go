package analysis

import (
	"calsdt/domain/run"

	"github.com/montanaflynn/stats"
)

// Summary describes the score distribution of the accepted numbers
type Summary = run.Stats

// Summarize computes summary statistics over result scores. An empty input
// gives a zero Summary.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	data := make(stats.Float64Data, len(results))
	for i, r := range results {
		data[i] = r.Score
	}

	s := Summary{Count: len(data)}
	// errors only occur on empty input, ruled out above
	s.Mean, _ = data.Mean()
	s.StdDev, _ = data.StandardDeviation()
	s.Min, _ = data.Min()
	s.Max, _ = data.Max()
	s.Median, _ = data.Median()
	s.Q25, _ = data.Percentile(25)
	s.Q75, _ = data.Percentile(75)
	return s
}
