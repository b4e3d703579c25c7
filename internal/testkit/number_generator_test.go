package testkit

import (
	"strings"
	"testing"

	"calsdt/domain/phone"
)

func TestNumberGenerator_Basic(t *testing.T) {
	config := NumberGeneratorConfig{Count: 200, Prefix: "091", Seed: 7}

	lines, err := NewNumberGenerator(config).Generate()
	if err != nil {
		t.Fatalf("Failed to generate numbers: %v", err)
	}
	if len(lines) != 200 {
		t.Fatalf("Expected 200 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if !strings.HasPrefix(line, "091") {
			t.Errorf("Line %d %q lacks prefix", i, line)
		}
		if _, err := phone.Extract(line); err != nil {
			t.Errorf("Line %d %q does not parse: %v", i, line, err)
		}
	}
}

func TestNumberGenerator_Deterministic(t *testing.T) {
	config := DefaultNumberConfig()
	config.NoiseRate = 0.3

	a, err := NewNumberGenerator(config).Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewNumberGenerator(config).Generate()
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Line %d differs across runs with the same seed: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestNumberGenerator_NoiseProducesMalformedLines(t *testing.T) {
	config := NumberGeneratorConfig{Count: 500, Prefix: "09", NoiseRate: 1, Seed: 3}

	lines, err := NewNumberGenerator(config).Generate()
	if err != nil {
		t.Fatal(err)
	}

	malformed := 0
	for _, line := range lines {
		if _, err := phone.Extract(line); err != nil {
			malformed++
		}
	}
	if malformed == 0 || malformed == len(lines) {
		t.Errorf("Expected a mix of parseable and malformed lines, got %d malformed of %d", malformed, len(lines))
	}
}

func TestNumberGenerator_BadPrefix(t *testing.T) {
	for _, prefix := range []string{"09a", "01234567890"} {
		_, err := NewNumberGenerator(NumberGeneratorConfig{Count: 1, Prefix: prefix}).Generate()
		if err == nil {
			t.Errorf("Expected error for prefix %q", prefix)
		}
	}
}
