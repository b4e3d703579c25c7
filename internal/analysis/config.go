package analysis

import (
	"fmt"
	"strings"

	"calsdt/domain/core"
	"calsdt/domain/element"
	"calsdt/internal/referee"
)

// Mode selects the mode-specific filter and the final score formula
type Mode string

const (
	ModeCompatibility   Mode = "Compatibility"
	ModeAbsoluteBalance Mode = "AbsoluteBalance"
)

// ParseMode accepts the mode names case-insensitively, with or without an underscore
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "")) {
	case "compatibility":
		return ModeCompatibility, nil
	case "absolutebalance":
		return ModeAbsoluteBalance, nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnknownMode, s)
	}
}

// Weights are the compatibility-score weights per role
type Weights struct {
	Sinh     float64 `json:"score_sinh" yaml:"score_sinh"`
	Cung     float64 `json:"score_cung" yaml:"score_cung"`
	BiKhac   float64 `json:"score_bi_khac" yaml:"score_bi_khac"`
	SinhXuat float64 `json:"score_sinh_xuat" yaml:"score_sinh_xuat"`
	Khac     float64 `json:"score_khac" yaml:"score_khac"`
}

// DefaultWeights returns 3, 2, 1, -1, -3
func DefaultWeights() Weights {
	return Weights{Sinh: 3, Cung: 2, BiKhac: 1, SinhXuat: -1, Khac: -3}
}

// For returns the weight of a role
func (w Weights) For(r element.Role) float64 {
	switch r {
	case element.RoleSinh:
		return w.Sinh
	case element.RoleCung:
		return w.Cung
	case element.RoleBiKhac:
		return w.BiKhac
	case element.RoleSinhXuat:
		return w.SinhXuat
	default:
		return w.Khac
	}
}

// Config is the analysis configuration for one run. Build it once and do not
// mutate it while a pipeline is using it.
type Config struct {
	Mode     Mode            `json:"mode"`
	UserMenh element.Element `json:"user_menh"`

	Weights    Weights            `json:"weights"`
	Thresholds referee.Thresholds `json:"thresholds"`

	StaticBalance bool `json:"toggle_static_balance"`
	Completeness  bool `json:"toggle_completeness"`

	Custom referee.CustomFilterConfig `json:"custom"`
}

// DefaultConfig returns compatibility mode for Kim with the stock weights,
// thresholds and toggles. Custom filters are off.
func DefaultConfig() Config {
	return Config{
		Mode:          ModeCompatibility,
		UserMenh:      element.Metal,
		Weights:       DefaultWeights(),
		Thresholds:    referee.DefaultThresholds(),
		StaticBalance: true,
		Completeness:  true,
	}
}

// Options flattens the config into the option names used by the wire format
func (c Config) Options() map[string]interface{} {
	return map[string]interface{}{
		optMode:            string(c.Mode),
		optUserMenh:        c.UserMenh.String(),
		optScoreSinh:       c.Weights.Sinh,
		optScoreCung:       c.Weights.Cung,
		optScoreBiKhac:     c.Weights.BiKhac,
		optScoreSinhXuat:   c.Weights.SinhXuat,
		optScoreKhac:       c.Weights.Khac,
		optKhacMax:         c.Thresholds.KhacMax,
		optBiKhacMax:       c.Thresholds.BiKhacMax,
		optSinhMin:         c.Thresholds.SinhMin,
		optCungMin:         c.Thresholds.CungMin,
		optTongMax:         c.Thresholds.TongMax,
		optAnyMax:          c.Thresholds.AnyMax,
		optStaticBalance:   c.StaticBalance,
		optCompleteness:    c.Completeness,
		optPrefixToggle:    c.Custom.PrefixEnabled,
		optPrefixValue:     c.Custom.PrefixValue,
		optSuffixToggle:    c.Custom.SuffixEnabled,
		optSuffixValue:     c.Custom.SuffixValue,
		optBlacklistToggle: c.Custom.BlacklistEnabled,
		optBlacklistDigits: c.Custom.BlacklistDigits,
	}
}

// Hash fingerprints the config for run logs
func (c Config) Hash() core.ConfigHash {
	return core.ComputeConfigHash(c.Options())
}
