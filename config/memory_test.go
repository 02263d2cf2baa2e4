package config_test

import (
	"math"
	"testing"

	"github.com/habiliai/memoryclient/config"
	"github.com/habiliai/memoryclient/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_EmptyInput(t *testing.T) {
	conf, err := config.Normalize(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", conf.ServerURL)
	assert.Empty(t, conf.APIKey)
	assert.Empty(t, conf.BearerToken)
	assert.Empty(t, conf.Namespace)
	assert.Equal(t, 30000, conf.Timeout)
	assert.True(t, conf.AutoCapture)
	assert.True(t, conf.AutoRecall)
	assert.Equal(t, 0.3, conf.MinScore)
	assert.Equal(t, 3, conf.RecallLimit)
	assert.Empty(t, conf.ExtractionStrategy)
	assert.Empty(t, conf.CustomPrompt)

	assert.Equal(t, config.NewMemoryConfig(), conf)
}

func TestNormalize_InvalidShape(t *testing.T) {
	for _, raw := range []any{
		nil,
		[]any{},
		[]string{"serverUrl"},
		"http://localhost:8000",
		42,
		true,
		map[string]any(nil),
	} {
		_, err := config.Normalize(raw)
		require.Error(t, err, "raw=%v", raw)
		assert.ErrorIs(t, err, errors.ErrInvalidShape, "raw=%v", raw)
	}
}

func TestNormalize_UnknownFields(t *testing.T) {
	_, err := config.Normalize(map[string]any{
		"serverUrl": "http://localhost:8000",
		"maxScore":  0.9,
		"nameSpace": "agents",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownField)

	// every offending key is named, not just the first
	assert.Contains(t, err.Error(), "maxScore")
	assert.Contains(t, err.Error(), "nameSpace")
}

func TestNormalize_MinScoreClamped(t *testing.T) {
	tests := []struct {
		name     string
		minScore any
		expected float64
	}{
		{"below range", -5, 0.0},
		{"above range", 5, 1.0},
		{"in range", 0.5, 0.5},
		{"zero", 0, 0.0},
		{"one", 1, 1.0},
		{"wrong type falls back to default", "0.5", 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := config.Normalize(map[string]any{"minScore": tt.minScore})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, conf.MinScore)
		})
	}
}

func TestNormalize_RecallLimitClamped(t *testing.T) {
	tests := []struct {
		name        string
		recallLimit any
		expected    int
	}{
		{"zero becomes one", 0, 1},
		{"fraction is floored", 2.7, 2},
		{"negative becomes one", -3, 1},
		{"plain value kept", 10, 10},
		{"yaml-style uint64", uint64(7), 7},
		{"huge value stays in int range", 1e30, math.MaxInt32},
		{"huge negative becomes one", -1e30, 1},
		{"wrong type falls back to default", true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := config.Normalize(map[string]any{"recallLimit": tt.recallLimit})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, conf.RecallLimit)
			assert.GreaterOrEqual(t, conf.RecallLimit, 1)
		})
	}
}

func TestNormalize_AutoFlagsAreTrueUnlessLiteralFalse(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"literal false", false, false},
		{"literal true", true, true},
		{"string false", "false", true},
		{"zero", 0, true},
		{"nil value", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := config.Normalize(map[string]any{
				"autoCapture": tt.value,
				"autoRecall":  tt.value,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, conf.AutoCapture)
			assert.Equal(t, tt.expected, conf.AutoRecall)
		})
	}

	conf, err := config.Normalize(map[string]any{})
	require.NoError(t, err)
	assert.True(t, conf.AutoCapture, "missing key yields true")
	assert.True(t, conf.AutoRecall, "missing key yields true")
}

func TestNormalize_WrongTypedFieldsFallBackToDefaults(t *testing.T) {
	conf, err := config.Normalize(map[string]any{
		"serverUrl": 8000,
		"apiKey":    []any{"k"},
		"namespace": 1.5,
		"timeout":   "30s",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", conf.ServerURL)
	assert.Empty(t, conf.APIKey)
	assert.Empty(t, conf.Namespace)
	assert.Equal(t, 30000, conf.Timeout)
}

func TestNormalize_Timeout(t *testing.T) {
	conf, err := config.Normalize(map[string]any{"timeout": 5000})
	require.NoError(t, err)
	assert.Equal(t, 5000, conf.Timeout)

	// huge finite inputs must not overflow the int conversion
	conf, err = config.Normalize(map[string]any{"timeout": 1e30})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, conf.Timeout)

	conf, err = config.Normalize(map[string]any{"timeout": -1e30})
	require.NoError(t, err)
	assert.Equal(t, math.MinInt32, conf.Timeout)
}

func TestNormalize_ExtractionStrategy(t *testing.T) {
	for _, strategy := range config.ExtractionStrategies() {
		values := map[string]any{"extractionStrategy": string(strategy)}
		if strategy == config.ExtractionCustom {
			values["customPrompt"] = "extract the good parts"
		}

		conf, err := config.Normalize(values)
		require.NoError(t, err, "strategy=%s", strategy)
		assert.Equal(t, strategy, conf.ExtractionStrategy)
	}
}

func TestNormalize_ExtractionStrategyAbsentStaysAbsent(t *testing.T) {
	conf, err := config.Normalize(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, conf.ExtractionStrategy, "no default strategy is injected")

	// wrong-typed strategy is treated as absent, not invalid
	conf, err = config.Normalize(map[string]any{"extractionStrategy": 42})
	require.NoError(t, err)
	assert.Empty(t, conf.ExtractionStrategy)
}

func TestNormalize_InvalidExtractionStrategy(t *testing.T) {
	_, err := config.Normalize(map[string]any{"extractionStrategy": "bogus"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidEnum)

	// the message names the offending value and the allowed set
	assert.Contains(t, err.Error(), `"bogus"`)
	assert.Contains(t, err.Error(), "discrete")
	assert.Contains(t, err.Error(), "summary")
	assert.Contains(t, err.Error(), "preferences")
	assert.Contains(t, err.Error(), "custom")
}

func TestNormalize_CustomPromptRequired(t *testing.T) {
	_, err := config.Normalize(map[string]any{"extractionStrategy": "custom"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingCustomPrompt)

	_, err = config.Normalize(map[string]any{
		"extractionStrategy": "custom",
		"customPrompt":       "",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingCustomPrompt)

	conf, err := config.Normalize(map[string]any{
		"extractionStrategy": "custom",
		"customPrompt":       "x",
	})
	require.NoError(t, err)
	assert.Equal(t, config.ExtractionCustom, conf.ExtractionStrategy)
	assert.Equal(t, "x", conf.CustomPrompt)
}

func TestNormalize_CustomPromptWithoutCustomStrategy(t *testing.T) {
	conf, err := config.Normalize(map[string]any{
		"extractionStrategy": "summary",
		"customPrompt":       "ignored but kept",
	})
	require.NoError(t, err)
	assert.Equal(t, "ignored but kept", conf.CustomPrompt)
}

func TestNormalize_EnvResolution(t *testing.T) {
	t.Setenv("MY_VAR", "http://x:9")
	t.Setenv("MEMORYCLIENT_TEST_KEY", "sk-123")

	conf, err := config.Normalize(map[string]any{
		"serverUrl": "${MY_VAR}",
		"apiKey":    "${MEMORYCLIENT_TEST_KEY}",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://x:9", conf.ServerURL)
	assert.Equal(t, "sk-123", conf.APIKey)
}

func TestNormalize_EnvResolutionMissingVar(t *testing.T) {
	_, err := config.Normalize(map[string]any{
		"serverUrl": "${MEMORYCLIENT_TEST_UNSET_VAR}",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingEnvVar)
	assert.Contains(t, err.Error(), "MEMORYCLIENT_TEST_UNSET_VAR")
}

func TestNormalize_NamespaceIsNotResolved(t *testing.T) {
	conf, err := config.Normalize(map[string]any{
		"namespace": "${MEMORYCLIENT_TEST_UNSET_VAR}",
	})
	require.NoError(t, err)
	assert.Equal(t, "${MEMORYCLIENT_TEST_UNSET_VAR}", conf.Namespace)
}

func TestNormalize_CustomPromptIsNotResolved(t *testing.T) {
	conf, err := config.Normalize(map[string]any{
		"extractionStrategy": "custom",
		"customPrompt":       "use ${placeholder} style output",
	})
	require.NoError(t, err)
	assert.Equal(t, "use ${placeholder} style output", conf.CustomPrompt)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Setenv("MEMORYCLIENT_TEST_URL", "http://memory.internal:8000")

	conf, err := config.Normalize(map[string]any{
		"serverUrl":          "${MEMORYCLIENT_TEST_URL}",
		"bearerToken":        "token-1",
		"namespace":          "agents",
		"timeout":            1500,
		"autoRecall":         false,
		"minScore":           0.7,
		"recallLimit":        5,
		"extractionStrategy": "preferences",
	})
	require.NoError(t, err)

	again, err := config.Normalize(conf.AsMap())
	require.NoError(t, err)
	assert.Equal(t, conf, again)
}
