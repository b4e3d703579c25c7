package testkit

import (
	"fmt"
	"math/rand"
	"strings"
)

// NumberGeneratorConfig configures the candidate number generator
// Prefix is copied verbatim to the front of every number; NoiseRate is the
// share of lines emitted with separators or as junk.
type NumberGeneratorConfig struct {
	Count     int     `json:"count"`
	Prefix    string  `json:"prefix"`
	NoiseRate float64 `json:"noise_rate"`
	Seed      int64   `json:"seed"`
}

// DefaultNumberConfig returns sensible defaults for number generation
func DefaultNumberConfig() NumberGeneratorConfig {
	return NumberGeneratorConfig{
		Count:  1000,
		Prefix: "09",
		Seed:   42,
	}
}

// NumberGenerator produces reproducible candidate number lists
type NumberGenerator struct {
	config NumberGeneratorConfig
	rng    *rand.Rand
}

// NewNumberGenerator creates a new number generator
func NewNumberGenerator(config NumberGeneratorConfig) *NumberGenerator {
	return &NumberGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns Count raw input lines. With NoiseRate > 0 some lines are
// formatted with separators and some are malformed, as real lists are.
func (g *NumberGenerator) Generate() ([]string, error) {
	prefix := g.config.Prefix
	if len(prefix) > 10 || strings.Trim(prefix, "0123456789") != "" {
		return nil, fmt.Errorf("prefix %q must be at most 10 digits", prefix)
	}

	lines := make([]string, 0, g.config.Count)
	for i := 0; i < g.config.Count; i++ {
		number := g.number(prefix)
		if g.config.NoiseRate > 0 && g.rng.Float64() < g.config.NoiseRate {
			number = g.noisy(number)
		}
		lines = append(lines, number)
	}
	return lines, nil
}

func (g *NumberGenerator) number(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for b.Len() < 10 {
		b.WriteByte(byte('0' + g.rng.Intn(10)))
	}
	return b.String()
}

func (g *NumberGenerator) noisy(number string) string {
	switch g.rng.Intn(4) {
	case 0:
		return number[:4] + "." + number[4:7] + "." + number[7:]
	case 1:
		return number[:4] + "-" + number[4:]
	case 2:
		// drop a digit
		return number[:9]
	default:
		return number + "  score=0.00"
	}
}
