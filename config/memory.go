package config

import (
	"math"
	"sort"
	"strings"

	"github.com/habiliai/memoryclient/errors"
	"github.com/samber/lo"
)

type (
	// MemoryConfig is the normalized configuration for talking to an agent
	// memory server. Build one with Normalize; a zero value is not usable.
	MemoryConfig struct {
		ServerURL          string             `json:"serverUrl" jsonschema_description:"Base URL of the agent memory server. Supports ${VAR} environment placeholders."`
		APIKey             string             `json:"apiKey,omitempty" jsonschema_description:"API key sent as the X-API-Key header. Supports ${VAR} environment placeholders."`
		BearerToken        string             `json:"bearerToken,omitempty" jsonschema_description:"Bearer token sent as the Authorization header. Supports ${VAR} environment placeholders."`
		Namespace          string             `json:"namespace,omitempty" jsonschema_description:"Partition label for organizing stored memories on the server."`
		Timeout            int                `json:"timeout" jsonschema_description:"Request timeout in milliseconds."`
		AutoCapture        bool               `json:"autoCapture" jsonschema_description:"Automatically capture conversation content into memory."`
		AutoRecall         bool               `json:"autoRecall" jsonschema_description:"Automatically recall relevant memories into context."`
		MinScore           float64            `json:"minScore" jsonschema_description:"Minimum similarity score for recalled memories (0.0~1.0)."`
		RecallLimit        int                `json:"recallLimit" jsonschema_description:"Maximum number of memories recalled per query."`
		ExtractionStrategy ExtractionStrategy `json:"extractionStrategy,omitempty" jsonschema_description:"How the server condenses conversation content into memory records."`
		CustomPrompt       string             `json:"customPrompt,omitempty" jsonschema_description:"Extraction prompt used when extractionStrategy is custom."`
	}

	// ExtractionStrategy selects how the memory server condenses
	// conversational input into stored records. An empty value means the
	// server's default (discrete) behavior.
	ExtractionStrategy string
)

const (
	ExtractionDiscrete    ExtractionStrategy = "discrete"
	ExtractionSummary     ExtractionStrategy = "summary"
	ExtractionPreferences ExtractionStrategy = "preferences"
	ExtractionCustom      ExtractionStrategy = "custom"
)

const (
	DefaultServerURL   = "http://localhost:8000"
	DefaultTimeout     = 30000
	DefaultMinScore    = 0.3
	DefaultRecallLimit = 3
)

// memoryConfigFields is the set of recognized input keys, in UI order.
// metadata.go must stay in sync with this list.
var memoryConfigFields = []string{
	"serverUrl",
	"apiKey",
	"bearerToken",
	"namespace",
	"timeout",
	"autoCapture",
	"autoRecall",
	"minScore",
	"recallLimit",
	"extractionStrategy",
	"customPrompt",
}

// ExtractionStrategies returns the allowed extraction strategy values, in
// the order they are presented to users.
func ExtractionStrategies() []ExtractionStrategy {
	return []ExtractionStrategy{
		ExtractionDiscrete,
		ExtractionSummary,
		ExtractionPreferences,
		ExtractionCustom,
	}
}

// NewMemoryConfig creates a new MemoryConfig with sensible defaults. It is
// what Normalize returns for an empty input.
func NewMemoryConfig() *MemoryConfig {
	return &MemoryConfig{
		ServerURL:   DefaultServerURL,
		Timeout:     DefaultTimeout,
		AutoCapture: true,
		AutoRecall:  true,
		MinScore:    DefaultMinScore,
		RecallLimit: DefaultRecallLimit,
	}
}

// Normalize validates an untyped configuration value and returns the fully
// defaulted, environment-resolved MemoryConfig.
//
// Structural and semantic problems fail the whole call: a non-mapping input,
// unknown keys, an invalid extractionStrategy, a custom strategy without a
// customPrompt, and ${VAR} placeholders referencing unset environment
// variables. A field whose value merely has the wrong type falls back to its
// default instead of failing, and out-of-range numbers are clamped. Hosts
// routinely pass partially-malformed configs and rely on that leniency, so
// do not tighten it without a product decision.
func Normalize(raw any) (*MemoryConfig, error) {
	values, ok := raw.(map[string]any)
	if !ok || values == nil {
		return nil, errors.Wrapf(errors.ErrInvalidShape, "got %T", raw)
	}

	unknown := lo.Reject(lo.Keys(values), func(key string, _ int) bool {
		return lo.Contains(memoryConfigFields, key)
	})
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.Wrapf(errors.ErrUnknownField,
			"unknown config fields: %s (recognized fields: %s)",
			strings.Join(unknown, ", "), strings.Join(memoryConfigFields, ", "))
	}

	conf := NewMemoryConfig()

	if s, ok := stringValue(values, "serverUrl"); ok {
		conf.ServerURL = s
	}
	if s, ok := stringValue(values, "apiKey"); ok {
		conf.APIKey = s
	}
	if s, ok := stringValue(values, "bearerToken"); ok {
		conf.BearerToken = s
	}
	if s, ok := stringValue(values, "namespace"); ok {
		conf.Namespace = s
	}
	if n, ok := numberValue(values, "timeout"); ok {
		conf.Timeout = clampInt(n, math.MinInt32, math.MaxInt32)
	}
	// autoCapture/autoRecall are true unless explicitly the boolean false.
	// A missing key, a string "false", or a 0 all mean true.
	if b, ok := values["autoCapture"].(bool); ok && !b {
		conf.AutoCapture = false
	}
	if b, ok := values["autoRecall"].(bool); ok && !b {
		conf.AutoRecall = false
	}
	if n, ok := numberValue(values, "minScore"); ok {
		conf.MinScore = math.Min(math.Max(n, 0), 1)
	}
	if n, ok := numberValue(values, "recallLimit"); ok {
		conf.RecallLimit = clampInt(math.Floor(n), 1, math.MaxInt32)
	}
	if s, ok := stringValue(values, "extractionStrategy"); ok {
		strategy := ExtractionStrategy(s)
		if !lo.Contains(ExtractionStrategies(), strategy) {
			allowed := lo.Map(ExtractionStrategies(), func(s ExtractionStrategy, _ int) string {
				return string(s)
			})
			return nil, errors.Wrapf(errors.ErrInvalidEnum,
				"extractionStrategy %q is not one of: %s", s, strings.Join(allowed, ", "))
		}
		conf.ExtractionStrategy = strategy
	}
	if s, ok := stringValue(values, "customPrompt"); ok {
		conf.CustomPrompt = s
	}

	if conf.ExtractionStrategy == ExtractionCustom && conf.CustomPrompt == "" {
		return nil, errors.Wrapf(errors.ErrMissingCustomPrompt,
			"extractionStrategy %q requires a non-empty customPrompt", ExtractionCustom)
	}

	var err error
	if conf.ServerURL, err = ResolvePlaceholders(conf.ServerURL); err != nil {
		return nil, errors.Wrapf(err, "failed to resolve serverUrl")
	}
	if conf.APIKey, err = ResolvePlaceholders(conf.APIKey); err != nil {
		return nil, errors.Wrapf(err, "failed to resolve apiKey")
	}
	if conf.BearerToken, err = ResolvePlaceholders(conf.BearerToken); err != nil {
		return nil, errors.Wrapf(err, "failed to resolve bearerToken")
	}

	return conf, nil
}

// AsMap returns the raw-input view of a normalized config. Optional fields
// that are absent do not appear as keys. Normalize(conf.AsMap()) yields a
// config equal to conf as long as the environment has not changed.
func (c *MemoryConfig) AsMap() map[string]any {
	values := map[string]any{
		"serverUrl":   c.ServerURL,
		"timeout":     c.Timeout,
		"autoCapture": c.AutoCapture,
		"autoRecall":  c.AutoRecall,
		"minScore":    c.MinScore,
		"recallLimit": c.RecallLimit,
	}
	if c.APIKey != "" {
		values["apiKey"] = c.APIKey
	}
	if c.BearerToken != "" {
		values["bearerToken"] = c.BearerToken
	}
	if c.Namespace != "" {
		values["namespace"] = c.Namespace
	}
	if c.ExtractionStrategy != "" {
		values["extractionStrategy"] = string(c.ExtractionStrategy)
	}
	if c.CustomPrompt != "" {
		values["customPrompt"] = c.CustomPrompt
	}
	return values
}

// clampInt converts a finite float to int, bounded so the conversion cannot
// overflow. A float-to-int conversion outside the int range is undefined and
// yields the minimum int on amd64.
func clampInt(n, low, high float64) int {
	return int(math.Min(math.Max(n, low), high))
}

func stringValue(values map[string]any, key string) (string, bool) {
	s, ok := values[key].(string)
	return s, ok
}

// numberValue reads a finite number regardless of how the host's decoder
// typed it. YAML decoders hand over uint64/int64, JSON hands over float64.
func numberValue(values map[string]any, key string) (float64, bool) {
	switch n := values[key].(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		f := float64(n)
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	default:
		return 0, false
	}
}
