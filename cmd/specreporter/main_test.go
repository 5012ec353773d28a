package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const events = `{"event":"runner:start","runner":{"cid":"0-0","specs":["/login.js"],"sessionId":"abc"}}
{"event":"suite:start","suite":{"cid":"0-0","uid":"s1","title":"Login"}}
{"event":"test:pass","test":{"cid":"0-0","title":"works"}}
{"event":"test:fail","test":{"cid":"0-0","title":"rejects","err":{"message":"expected 401"}}}
{"event":"suite:end","suite":{"cid":"0-0","uid":"s1"}}
{"event":"runner:end","runner":{"cid":"0-0"}}
{"event":"end"}
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestReplayCommand(t *testing.T) {
	t.Run("should render an event log read from stdin", func(t *testing.T) {
		out, _, err := execute(t, events, "replay", "-", "--hostname", "hub.testingbot.com")

		require.NoError(t, err)
		require.Contains(t, out, "[TESTCASE] Login\n")
		require.Contains(t, out, "[TESTCASE]   ✓ works\n")
		require.Contains(t, out, "[TESTCASE] 1) rejects:\n[TESTCASE] expected 401\n")
		require.Contains(t, out, "Check out job at https://testingbot.com/members/tests/abc")
		require.Contains(t, strings.ToUpper(out), "RUN SUMMARY")
	})

	t.Run("should read a file and write metrics", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "events.ndjson")
		require.NoError(t, os.WriteFile(path, []byte(events), 0o644))
		metricsFile := filepath.Join(dir, "specreporter.prom")

		_, _, err := execute(t, "", "replay", path, "--metrics-file", metricsFile)
		require.NoError(t, err)

		data, err := os.ReadFile(metricsFile)
		require.NoError(t, err)
		require.Contains(t, string(data), `specreporter_tests_total{cid="0-0",state="fail"} 1`)
	})

	t.Run("should write an HTML report next to the console summary", func(t *testing.T) {
		report := filepath.Join(t.TempDir(), "out", "summary.html")

		out, _, err := execute(t, events, "replay", "--html-report", report)
		require.NoError(t, err)
		require.Contains(t, strings.ToUpper(out), "RUN SUMMARY")

		data, err := os.ReadFile(report)
		require.NoError(t, err)
		require.Contains(t, string(data), "1) rejects")
		require.Contains(t, string(data), "expected 401")
	})

	t.Run("should apply the configuration file", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "specreporter.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("variant: validated\n"), 0o644))

		out, _, err := execute(t, `{"event":"runner:start","runner":{"cid":"0-0"}}
{"event":"suite:start","suite":{"cid":"0-0","uid":"s1","title":"A"}}
{"event":"test:unresolved","test":{"cid":"0-0","title":"maybe"}}
{"event":"suite:end","suite":{"cid":"0-0","uid":"s1"}}
{"event":"runner:end","runner":{"cid":"0-0"}}
`, "replay", "--config", configPath)

		require.NoError(t, err)
		require.Contains(t, out, "1 unvalidated (")
	})

	t.Run("should warn about rejected events and keep going", func(t *testing.T) {
		out, stderr, err := execute(t, "{\"event\":\"bogus\"}\n"+events, "replay")

		require.NoError(t, err)
		require.Contains(t, stderr, "event rejected")
		require.Contains(t, out, "[TESTCASE]   ✓ works\n")
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		_, _, err := execute(t, "{oops\n", "replay")

		require.ErrorContains(t, err, "line 1")
	})

	t.Run("should reject an unknown log level", func(t *testing.T) {
		_, _, err := execute(t, events, "replay", "--log-level", "verbose")

		require.ErrorContains(t, err, "invalid --log-level")
	})
}

func TestDryRunCommand(t *testing.T) {
	t.Run("should list scenarios matching the tags as skipped", func(t *testing.T) {
		out, _, err := execute(t, "", "dryrun", "../../internal/feature/testdata", "--tags", "@smoke")

		require.NoError(t, err)
		require.Contains(t, out, "[TESTCASE]     - Sum of items\n")
		require.Contains(t, out, "[TESTCASE]   - Valid credentials\n")
		require.NotContains(t, out, "Locked accounts")
	})

	t.Run("should record the emitted events for a later replay", func(t *testing.T) {
		record := filepath.Join(t.TempDir(), "dryrun.ndjson")

		_, _, err := execute(t, "", "dryrun", "../../internal/feature/testdata", "--tags", "@smoke", "--record", record)
		require.NoError(t, err)

		data, err := os.ReadFile(record)
		require.NoError(t, err)
		require.Contains(t, string(data), `"event":"runner:init"`)
		require.Contains(t, string(data), `"title":"Valid credentials"`)

		out, _, err := execute(t, "", "replay", record)
		require.NoError(t, err)
		require.Contains(t, out, "[TESTCASE]   - Valid credentials\n")
		require.NotContains(t, out, "Locked accounts")
	})
}
