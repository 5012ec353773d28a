package reporter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeConfigs(t *testing.T) {
	t.Run("should switch booleans on from any source", func(t *testing.T) {
		merged := MergeConfigs(&Config{CleanStackTraces: true}, nil, &Config{InstantReport: true})

		require.True(t, merged.CleanStackTraces)
		require.True(t, merged.Instant())
		require.False(t, merged.ReportErrorsInstantly)
	})

	t.Run("should let the last non-empty string win", func(t *testing.T) {
		merged := MergeConfigs(
			&Config{Hostname: "hub.testingbot.com", ConsoleLogLevel: LogLevelSteps, Variant: "validated"},
			&Config{Hostname: "ondemand.saucelabs.com"},
		)

		require.Equal(t, "ondemand.saucelabs.com", merged.Hostname)
		require.Equal(t, LogLevelSteps, merged.ConsoleLogLevel)
		require.Equal(t, "validated", merged.Variant)
	})

	t.Run("should append stack filters", func(t *testing.T) {
		merged := MergeConfigs(&Config{StackFilters: []string{"a"}}, &Config{StackFilters: []string{"b"}})

		require.Equal(t, []string{"a", "b"}, merged.StackFilters)
	})
}

func TestVariantByName(t *testing.T) {
	require.Equal(t, VariantValidated, VariantByName("validated"))
	require.Equal(t, VariantVerified, VariantByName("verified"))
	require.Equal(t, VariantVerified, VariantByName(""))
	require.Equal(t, VariantVerified, VariantByName("other"))
}
