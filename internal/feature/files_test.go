package feature

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFeatureFilesIn(t *testing.T) {
	t.Run("should return all feature files in a directory", func(t *testing.T) {
		expectedFiles := []string{
			"testdata/checkout/cart.feature",
			"testdata/login.feature",
		}

		actualFiles, err := SearchFeatureFilesIn([]string{"testdata"})

		require.Nil(t, err)
		require.Equal(t, expectedFiles, actualFiles)
	})

	t.Run("should fail for a missing directory", func(t *testing.T) {
		_, err := SearchFeatureFilesIn([]string{"testdata/missing"})

		require.Error(t, err)
	})
}

func TestParseGherkinFile(t *testing.T) {
	t.Run("should return feature", func(t *testing.T) {
		file, err := os.ReadFile("testdata/login.feature")
		require.NoError(t, err)

		document, err := ParseGherkinFile(strings.NewReader(string(file)), nil)

		require.NoError(t, err)
		require.Equal(t, "Login", document.Feature.Name)
		require.Len(t, document.Feature.Children, 3)
	})

	t.Run("should reject invalid gherkin", func(t *testing.T) {
		_, err := ParseGherkinFile(strings.NewReader("Scenario: orphan\n"), nil)

		require.Error(t, err)
	})
}
