// Package eventlog reads and writes reporter events as newline-delimited JSON,
// one event object per line.
package eventlog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/denizgursoy/specreporter/pkg/reporter"
)

// maxLineSize bounds a single encoded event. Failures with long stacks make
// lines much larger than the bufio default.
const maxLineSize = 4 * 1024 * 1024

// Handler consumes decoded events.
type Handler interface {
	Handle(ev *reporter.Event) error
}

// Decoder reads events from an NDJSON stream.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Decoder{scanner: scanner}
}

// Line returns the number of the last line read.
func (d *Decoder) Line() int {
	return d.line
}

// Next returns the next event. Blank lines are skipped. It returns io.EOF
// once the stream is exhausted.
func (d *Decoder) Next() (*reporter.Event, error) {
	for d.scanner.Scan() {
		d.line++
		data := bytes.TrimSpace(d.scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		var ev reporter.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			return nil, fmt.Errorf("line %d: decode event: %w", d.line, err)
		}
		if ev.Name == "" {
			return nil, fmt.Errorf("line %d: event name is missing", d.line)
		}
		return &ev, nil
	}

	if err := d.scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: read events: %w", d.line+1, err)
	}
	return nil, io.EOF
}

// Encoder writes events as NDJSON.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Encoder{enc: enc}
}

// Encode writes ev followed by a newline.
func (e *Encoder) Encode(ev *reporter.Event) error {
	if err := e.enc.Encode(ev); err != nil {
		return fmt.Errorf("encode event %s: %w", ev.Name, err)
	}
	return nil
}

type tee struct {
	next Handler
	enc  *Encoder
}

// Tee returns a handler that writes every event to enc before passing it to
// next. Events are recorded even when next rejects them.
func Tee(next Handler, enc *Encoder) Handler {
	return &tee{next: next, enc: enc}
}

func (t *tee) Handle(ev *reporter.Event) error {
	if err := t.enc.Encode(ev); err != nil {
		return err
	}
	return t.next.Handle(ev)
}

// Result summarizes a replay.
type Result struct {
	Events int
	// Errors holds one error per event rejected by the handler.
	Errors []error
}

// Replay feeds every event of r to h in order. Events rejected by h are
// collected in the result and do not stop the replay; decoding errors and
// cancellation of ctx do.
func Replay(ctx context.Context, r io.Reader, h Handler) (Result, error) {
	var res Result

	dec := NewDecoder(r)
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, err
		}

		res.Events++
		if err := h.Handle(ev); err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", dec.Line(), err))
		}
	}
}
