package eventlog

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/denizgursoy/specreporter/pkg/reporter"
)

type handlerFunc func(ev *reporter.Event) error

func (f handlerFunc) Handle(ev *reporter.Event) error { return f(ev) }

func TestDecoder_Next(t *testing.T) {
	t.Run("should decode events and skip blank lines", func(t *testing.T) {
		dec := NewDecoder(strings.NewReader(`{"event":"runner:start","runner":{"cid":"0-0","specs":["/a.js"]}}

{"event":"test:fail","test":{"cid":"0-0","title":"breaks","err":{"message":"boom","stack":"at x"}}}
`))

		ev, err := dec.Next()
		require.NoError(t, err)
		require.Equal(t, reporter.EventRunnerStart, ev.Name)
		require.Equal(t, []string{"/a.js"}, ev.Runner.Specs)

		ev, err = dec.Next()
		require.NoError(t, err)
		require.Equal(t, reporter.EventTestFail, ev.Name)
		require.Equal(t, "boom", ev.Test.Error.Message)
		require.Equal(t, 3, dec.Line())

		_, err = dec.Next()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("should report the line of malformed input", func(t *testing.T) {
		dec := NewDecoder(strings.NewReader("{\"event\":\"end\"}\n{not json}\n"))

		_, err := dec.Next()
		require.NoError(t, err)

		_, err = dec.Next()
		require.ErrorContains(t, err, "line 2")
	})

	t.Run("should require an event name", func(t *testing.T) {
		_, err := NewDecoder(strings.NewReader(`{"runner":{"cid":"0-0"}}`)).Next()

		require.ErrorContains(t, err, "event name is missing")
	})
}

func TestEncoder_Encode(t *testing.T) {
	t.Run("should write events that decode back", func(t *testing.T) {
		buf := &bytes.Buffer{}
		enc := NewEncoder(buf)
		at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		require.NoError(t, enc.Encode(&reporter.Event{Name: reporter.EventRunnerStart, Time: at, Runner: &reporter.RunnerInfo{CID: "0-0"}}))
		require.NoError(t, enc.Encode(&reporter.Event{Name: reporter.EventEnd}))
		require.Equal(t, 2, strings.Count(buf.String(), "\n"))
		require.NotContains(t, buf.String(), `"time":"0001`)

		dec := NewDecoder(buf)
		ev, err := dec.Next()
		require.NoError(t, err)
		require.True(t, at.Equal(ev.Time))
		require.Equal(t, "0-0", ev.Runner.CID)
	})
}

func TestTee(t *testing.T) {
	t.Run("should record events before handing them on", func(t *testing.T) {
		buf := &bytes.Buffer{}
		var handled []reporter.EventName
		h := Tee(handlerFunc(func(ev *reporter.Event) error {
			handled = append(handled, ev.Name)
			if ev.Name == "bogus" {
				return reporter.ErrUnknownEvent
			}
			return nil
		}), NewEncoder(buf))

		require.NoError(t, h.Handle(&reporter.Event{Name: reporter.EventRunnerStart, Runner: &reporter.RunnerInfo{CID: "0-0"}}))
		require.ErrorIs(t, h.Handle(&reporter.Event{Name: "bogus"}), reporter.ErrUnknownEvent)

		require.Equal(t, []reporter.EventName{reporter.EventRunnerStart, "bogus"}, handled)
		require.Equal(t, "{\"event\":\"runner:start\",\"runner\":{\"cid\":\"0-0\"}}\n{\"event\":\"bogus\"}\n", buf.String())
	})
}

func TestReplay(t *testing.T) {
	input := `{"event":"runner:start","runner":{"cid":"0-0"}}
{"event":"bogus"}
{"event":"end"}
`

	t.Run("should hand every event to the handler and count rejections", func(t *testing.T) {
		var names []reporter.EventName
		h := handlerFunc(func(ev *reporter.Event) error {
			names = append(names, ev.Name)
			if ev.Name == "bogus" {
				return reporter.ErrUnknownEvent
			}
			return nil
		})

		res, err := Replay(context.Background(), strings.NewReader(input), h)

		require.NoError(t, err)
		require.Equal(t, 3, res.Events)
		require.Len(t, res.Errors, 1)
		require.ErrorIs(t, res.Errors[0], reporter.ErrUnknownEvent)
		require.ErrorContains(t, res.Errors[0], "line 2")
		require.Equal(t, []reporter.EventName{reporter.EventRunnerStart, "bogus", reporter.EventEnd}, names)
	})

	t.Run("should drive a reporter end to end", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := reporter.New(
			reporter.WithPrinter(reporter.NewConsolePrinter(out, false)),
			reporter.WithEpilogue(reporter.NewTableEpilogue(io.Discard, reporter.VariantVerified, nil)),
		)

		res, err := Replay(context.Background(), strings.NewReader(`{"event":"runner:start","runner":{"cid":"0-0","specs":["/a.js"]}}
{"event":"suite:start","suite":{"cid":"0-0","uid":"s1","title":"Login"}}
{"event":"test:pass","test":{"cid":"0-0","title":"works"}}
{"event":"suite:end","suite":{"cid":"0-0","uid":"s1"}}
{"event":"runner:end","runner":{"cid":"0-0"}}
{"event":"end"}
`), r)

		require.NoError(t, err)
		require.Empty(t, res.Errors)
		require.Equal(t, 6, res.Events)
		require.Contains(t, out.String(), "[TESTCASE]   ✓ works\n")
		require.Contains(t, out.String(), "[TESTCASE] 1 passing (")
	})

	t.Run("should stop at malformed input", func(t *testing.T) {
		res, err := Replay(context.Background(), strings.NewReader("{\"event\":\"end\"}\n{\n"), handlerFunc(func(*reporter.Event) error { return nil }))

		require.ErrorContains(t, err, "line 2")
		require.Equal(t, 1, res.Events)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := Replay(ctx, strings.NewReader(input), handlerFunc(func(*reporter.Event) error { return nil }))

		require.ErrorIs(t, err, context.Canceled)
		require.Zero(t, res.Events)
	})
}
