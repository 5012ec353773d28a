package metrics

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/denizgursoy/specreporter/pkg/reporter"
)

func TestObserver(t *testing.T) {
	t.Run("should count events and test states", func(t *testing.T) {
		o := NewObserver()

		o.ObserveEvent(reporter.EventTestPass)
		o.ObserveEvent(reporter.EventTestPass)
		o.ObserveTestState("0-0", reporter.StatePass)
		o.ObserveTestState("0-1", reporter.StateFail)

		require.Equal(t, 2.0, testutil.ToFloat64(o.eventsTotal.WithLabelValues("test:pass")))
		require.Equal(t, 1.0, testutil.ToFloat64(o.testsTotal.WithLabelValues("0-0", "pass")))
		require.Equal(t, 1.0, testutil.ToFloat64(o.testsTotal.WithLabelValues("0-1", "fail")))
	})

	t.Run("should track running sessions", func(t *testing.T) {
		o := NewObserver()

		o.ObserveEvent(reporter.EventRunnerStart)
		o.ObserveEvent(reporter.EventRunnerStart)
		o.ObserveEvent(reporter.EventRunnerEnd)

		require.Equal(t, 1.0, testutil.ToFloat64(o.sessions))
	})

	t.Run("should be fed by the reporter", func(t *testing.T) {
		o := NewObserver()
		r := reporter.New(
			reporter.WithPrinter(reporter.NewConsolePrinter(io.Discard, false)),
			reporter.WithEpilogue(reporter.NewTableEpilogue(io.Discard, reporter.VariantVerified, nil)),
			reporter.WithObserver(o),
		)

		require.NoError(t, r.Handle(&reporter.Event{Name: reporter.EventTestBroken, Test: &reporter.TestRecord{CID: "0-0", Title: "x"}}))

		require.Equal(t, 1.0, testutil.ToFloat64(o.testsTotal.WithLabelValues("0-0", "broken")))
	})

	t.Run("should write a textfile", func(t *testing.T) {
		o := NewObserver()
		o.ObserveEvent(reporter.EventEnd)
		path := filepath.Join(t.TempDir(), "specreporter.prom")

		require.NoError(t, o.WriteTextfile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `specreporter_events_total{event="end"} 1`)
	})
}
