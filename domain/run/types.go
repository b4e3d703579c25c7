package run

import (
	"fmt"
	"strings"
	"time"

	"calsdt/domain/core"
)

// Entry is one accepted number in a ranked report
type Entry struct {
	Number string  `json:"number"`
	Score  float64 `json:"score"`
}

// Stats summarizes the accepted scores of a run
type Stats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Report is the complete record of one batch run, handed to result sinks
type Report struct {
	RunID       core.RunID     `json:"run_id"`
	Fingerprint Fingerprint    `json:"fingerprint"`
	Source      string         `json:"source"`
	Mode        string         `json:"mode"`
	Menh        string         `json:"menh"`
	StartedAt   time.Time      `json:"started_at"`
	Elapsed     time.Duration  `json:"elapsed_ns"`
	Total       int            `json:"total"`
	Accepted    int            `json:"accepted"`
	Rejections  map[string]int `json:"rejections"`
	Results     []Entry        `json:"results"`
	Stats       Stats          `json:"stats"`
}

// Fingerprint identifies the inputs of a run: identical config and lines
// always rank identically, so equal fingerprints mean equal results.
type Fingerprint struct {
	ConfigHash  core.ConfigHash `json:"config_hash"`
	InputHash   core.Hash       `json:"input_hash"`
	Fingerprint core.Hash       `json:"fingerprint"`
}

// NewFingerprint hashes the input lines in order and combines them with the config hash
func NewFingerprint(configHash core.ConfigHash, lines []string) Fingerprint {
	inputHash := core.NewHash([]byte(strings.Join(lines, "\n")))
	data := fmt.Sprintf("config:%s|input:%s|lines:%d", configHash, inputHash, len(lines))

	return Fingerprint{
		ConfigHash:  configHash,
		InputHash:   inputHash,
		Fingerprint: core.NewHash([]byte(data)),
	}
}
