package analysis

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"calsdt/domain/element"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Option names of the flat config payload
const (
	optMode            = "mode"
	optUserMenh        = "user_menh"
	optScoreSinh       = "score_sinh"
	optScoreCung       = "score_cung"
	optScoreBiKhac     = "score_bi_khac"
	optScoreSinhXuat   = "score_sinh_xuat"
	optScoreKhac       = "score_khac"
	optKhacMax         = "filter_khac_max"
	optBiKhacMax       = "filter_bi_khac_max"
	optSinhMin         = "filter_sinh_min"
	optCungMin         = "filter_cung_min"
	optTongMax         = "filter_tong_max"
	optAnyMax          = "filter_any_max"
	optStaticBalance   = "toggle_static_balance"
	optCompleteness    = "toggle_completeness"
	optPrefixToggle    = "toggle_prefix_filter"
	optPrefixValue     = "prefix_value"
	optSuffixToggle    = "toggle_suffix_filter"
	optSuffixValue     = "suffix_value"
	optBlacklistToggle = "toggle_blacklist_filter"
	optBlacklistDigits = "blacklist_digits"
)

// DecodeJSON reads a flat JSON config payload. Every option is read on its
// own: a missing, null or wrongly typed option keeps its default, and a
// payload that is not a JSON object yields DefaultConfig. Decoding never fails.
func DecodeJSON(data []byte) Config {
	cfg := DefaultConfig()
	if !gjson.ValidBytes(data) {
		return cfg
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return cfg
	}

	if v := root.Get(optMode); v.Exists() {
		if m, err := ParseMode(v.String()); err == nil {
			cfg.Mode = m
		}
	}
	if v := root.Get(optUserMenh); v.Type == gjson.String || v.Type == gjson.Number {
		if e, err := element.Parse(v.String()); err == nil {
			cfg.UserMenh = e
		}
	}

	floatOpt(root, optScoreSinh, &cfg.Weights.Sinh)
	floatOpt(root, optScoreCung, &cfg.Weights.Cung)
	floatOpt(root, optScoreBiKhac, &cfg.Weights.BiKhac)
	floatOpt(root, optScoreSinhXuat, &cfg.Weights.SinhXuat)
	floatOpt(root, optScoreKhac, &cfg.Weights.Khac)

	intOpt(root, optKhacMax, &cfg.Thresholds.KhacMax)
	intOpt(root, optBiKhacMax, &cfg.Thresholds.BiKhacMax)
	intOpt(root, optSinhMin, &cfg.Thresholds.SinhMin)
	intOpt(root, optCungMin, &cfg.Thresholds.CungMin)
	intOpt(root, optTongMax, &cfg.Thresholds.TongMax)
	intOpt(root, optAnyMax, &cfg.Thresholds.AnyMax)

	boolOpt(root, optStaticBalance, &cfg.StaticBalance)
	boolOpt(root, optCompleteness, &cfg.Completeness)
	boolOpt(root, optPrefixToggle, &cfg.Custom.PrefixEnabled)
	boolOpt(root, optSuffixToggle, &cfg.Custom.SuffixEnabled)
	boolOpt(root, optBlacklistToggle, &cfg.Custom.BlacklistEnabled)

	stringOpt(root, optPrefixValue, &cfg.Custom.PrefixValue)
	stringOpt(root, optSuffixValue, &cfg.Custom.SuffixValue)
	stringOpt(root, optBlacklistDigits, &cfg.Custom.BlacklistDigits)

	return cfg
}

// DecodeYAML reads the same flat options from a YAML document, with the same
// per-option fallback rules as DecodeJSON. The digit-string options keep the
// scalar exactly as written, so an unquoted prefix like 0912 stays "0912".
func DecodeYAML(data []byte) Config {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || doc == nil {
		return DefaultConfig()
	}

	flat := make(map[string]interface{}, len(doc))
	for key, node := range doc {
		if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
			continue
		}
		if digitStringOpts[key] {
			flat[key] = node.Value
			continue
		}
		var v interface{}
		if err := node.Decode(&v); err == nil {
			flat[key] = v
		}
	}

	asJSON, err := json.Marshal(flat)
	if err != nil {
		return DefaultConfig()
	}
	return DecodeJSON(asJSON)
}

// digitStringOpts are read as literal text, never as YAML numbers
var digitStringOpts = map[string]bool{
	optPrefixValue:     true,
	optSuffixValue:     true,
	optBlacklistDigits: true,
}

func floatOpt(root gjson.Result, key string, dst *float64) {
	v := root.Get(key)
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Float()
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return
		}
		f = parsed
	default:
		return
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return
	}
	*dst = f
}

func intOpt(root gjson.Result, key string, dst *int) {
	v := root.Get(key)
	switch v.Type {
	case gjson.Number:
		f := v.Float()
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return
		}
		*dst = int(f)
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return
		}
		*dst = n
	}
}

func boolOpt(root gjson.Result, key string, dst *bool) {
	v := root.Get(key)
	switch v.Type {
	case gjson.True, gjson.False:
		*dst = v.Bool()
	case gjson.String:
		b, err := strconv.ParseBool(strings.TrimSpace(v.Str))
		if err != nil {
			return
		}
		*dst = b
	}
}

func stringOpt(root gjson.Result, key string, dst *string) {
	v := root.Get(key)
	switch v.Type {
	case gjson.String:
		*dst = v.Str
	case gjson.Number:
		*dst = v.Raw
	}
}
