package reporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTableEpilogue_Print(t *testing.T) {
	t.Run("should print one row per session and the totals", func(t *testing.T) {
		out := &bytes.Buffer{}
		e := NewTableEpilogue(out, VariantValidated, nil)

		err := e.Print([]SessionSummary{
			{CID: "0-0", Environment: "chrome 120", Specs: []string{"/a.js"}, Tally: Tally{Passing: 3, Failing: 1}, Duration: 2 * time.Second},
			{CID: "0-1", Environment: "firefox", Specs: []string{"/b.js"}, Tally: Tally{Pending: 2, Unresolved: 1}, Duration: 500 * time.Millisecond},
		})
		require.NoError(t, err)

		table := strings.ToUpper(out.String())
		require.Contains(t, table, "RUN SUMMARY")
		require.Contains(t, table, "UNVALIDATED")
		require.Contains(t, table, "SKIPPED")
		require.Contains(t, table, "CHROME 120")
		require.Contains(t, table, "500MS")
		require.Contains(t, table, "2 SESSION(S)")
		require.Contains(t, out.String(), "│       2 │", "variant-labelled counts are right-aligned")
	})

	t.Run("should count a cid with testcase and spec runs as one session", func(t *testing.T) {
		out := &bytes.Buffer{}

		err := NewTableEpilogue(out, VariantVerified, nil).Print([]SessionSummary{
			{CID: "0-0", Specs: []string{"/case.js"}, Tally: Tally{Passing: 1}},
			{CID: "0-0", Specs: []string{"/spec.js"}, Tally: Tally{Passing: 2}},
		})
		require.NoError(t, err)

		require.Contains(t, strings.ToUpper(out.String()), "1 SESSION(S)")
	})

	t.Run("should print nothing without sessions", func(t *testing.T) {
		out := &bytes.Buffer{}

		require.NoError(t, NewTableEpilogue(out, VariantVerified, nil).Print(nil))
		require.Empty(t, out.String())
	})
}
