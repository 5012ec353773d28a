// Package reporter renders the lifecycle events of a test runner as
// hierarchical console output: indented suite and test trees, numbered
// failures with stack traces, per-runner summaries and a final epilogue.
//
// Events are delivered one at a time through (*Reporter).Handle. Sessions of
// concurrently running runners are told apart by their cid and may interleave
// freely at event granularity.
package reporter

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

var (
	// ErrUnknownEvent is returned by Handle for event names without handler.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrMissingPayload is returned by Handle when the payload required by
	// the event name is absent.
	ErrMissingPayload = errors.New("missing event payload")
)

type handlerFunc func(r *Reporter, ev *Event)

// route binds an event name to its handler.
type route struct {
	handle  handlerFunc
	payload func(ev *Event) bool
	// recordAfter defers feeding the registry until the handler ran. Used
	// by runner:start so the previous phase can be flushed first.
	recordAfter bool
}

func hasRunner(ev *Event) bool  { return ev.Runner != nil }
func hasSuite(ev *Event) bool   { return ev.Suite != nil }
func hasTest(ev *Event) bool    { return ev.Test != nil }
func hasStep(ev *Event) bool    { return ev.Step != nil }
func hasMessage(ev *Event) bool { return ev.Message != nil }
func always(*Event) bool        { return true }

// routes returns the table of every recognized event.
func routes() map[EventName]route {
	table := map[EventName]route{
		EventStartSpecs:           {handle: (*Reporter).onStartSpecs, payload: hasRunner},
		EventRunnerInit:           {handle: (*Reporter).onRunnerInit, payload: hasRunner},
		EventRunnerStart:          {handle: (*Reporter).onRunnerStart, payload: hasRunner, recordAfter: true},
		EventSuiteStart:           {handle: (*Reporter).onSuiteStart, payload: hasSuite},
		EventSuiteEnd:             {handle: (*Reporter).onSuiteEnd, payload: hasSuite},
		EventTestSetCurrentID:     {handle: (*Reporter).onSetCurrentID, payload: hasTest},
		EventStepStart:            {handle: (*Reporter).onStepStart, payload: hasStep},
		EventStepEnd:              {handle: (*Reporter).onStepEnd, payload: hasStep},
		EventRetryFailed:          {handle: (*Reporter).onRetry, payload: hasStep},
		EventRetryBroken:          {handle: (*Reporter).onRetry, payload: hasStep},
		EventRetryValidateFailure: {handle: (*Reporter).onRetryValidateFailure, payload: hasMessage},
		EventValidateFailure:      {handle: (*Reporter).onValidateFailure, payload: hasMessage},
		EventRunnerEnd:            {handle: (*Reporter).onRunnerEnd, payload: hasRunner},
		EventEnd:                  {handle: (*Reporter).onEnd, payload: always},
	}
	for name := range stateForEvent {
		table[name] = route{handle: (*Reporter).onTest, payload: hasTest}
	}
	return table
}

// Reporter aggregates lifecycle events and renders them.
type Reporter struct {
	mu             sync.Mutex
	config         *Config
	variant        Variant
	printer        Printer
	registry       ResultsRegistry
	recorder       Recorder
	epilogue       Epilogue
	observers      []Observer
	logger         Logger
	formatDuration DurationFormatter
	store          *store
	routes         map[EventName]route
	summaries      []SessionSummary
	lastCID        string
	ended          bool
}

// New creates a Reporter with the given options.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		config: &Config{},
		store:  newStore(),
		routes: routes(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.variant = VariantByName(r.config.Variant)
	// Set defaults if not provided
	if r.logger == nil {
		r.logger = &noopLogger{}
	}
	if r.printer == nil {
		r.printer = NewConsolePrinter(os.Stdout, !r.config.NoColor)
	}
	if r.registry == nil {
		r.registry = NewRegistry(nil)
	}
	if r.formatDuration == nil {
		r.formatDuration = HumanizeDuration
	}
	if r.epilogue == nil {
		r.epilogue = NewTableEpilogue(os.Stdout, r.variant, r.formatDuration)
	}
	if rec, ok := r.registry.(Recorder); ok {
		r.recorder = rec
	}
	return r
}

// Names returns every event name the reporter handles.
func (r *Reporter) Names() []EventName {
	names := make([]EventName, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	return names
}

// Handle dispatches one event. It never panics: unknown names, missing
// payloads and handler panics are returned as errors and leave the output
// of other sessions intact.
func (r *Reporter) Handle(ev *Event) (err error) {
	if ev == nil {
		return ErrMissingPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.routes[ev.Name]
	if !ok {
		r.logger.Warn("ignoring unknown event", "event", ev.Name)
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Name)
	}
	if !rt.payload(ev) {
		r.logger.Warn("ignoring event without payload", "event", ev.Name)
		return fmt.Errorf("%w: %q", ErrMissingPayload, ev.Name)
	}

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("event handler panicked", "event", ev.Name, "cid", ev.CID(), "panic", p)
			err = fmt.Errorf("handle %q: %v", ev.Name, p)
		}
	}()

	if cid := ev.CID(); cid != "" {
		r.lastCID = cid
	}
	if state, ok := stateForEvent[ev.Name]; ok && ev.Test.State == StateUnset {
		ev.Test.State = state
	}
	r.logger.Debug("handling event", "event", ev.Name, "cid", ev.CID())
	for _, o := range r.observers {
		o.ObserveEvent(ev.Name)
	}

	if !rt.recordAfter {
		r.record(ev)
	}
	rt.handle(r, ev)
	if rt.recordAfter {
		r.record(ev)
	}
	return nil
}

func (r *Reporter) record(ev *Event) {
	if r.recorder != nil {
		r.recorder.Record(ev)
	}
}

func (r *Reporter) onStartSpecs(ev *Event) {
	r.store.session(ev.Runner.CID).specPhase = true
}

func (r *Reporter) onRunnerInit(ev *Event) {
	sess := r.store.session(ev.Runner.CID)
	if len(ev.Runner.Specs) > 0 {
		sess.specs = ev.Runner.Specs
	}
}

func (r *Reporter) onRunnerStart(ev *Event) {
	cid := ev.Runner.CID
	sess := r.store.session(cid)
	if r.store.beginSpecRun(cid) && !r.config.Instant() && !sess.flushed {
		r.printBlock(r.composeSuiteResult(cid, testcaseTag))
	}

	r.store.runStart(cid, ev.Runner.Specs)
	if r.config.Instant() {
		r.printBanner(sess, ev.Runner)
	}
}

func (r *Reporter) onSuiteStart(ev *Event) {
	info := ev.Suite
	sess := r.store.session(info.CID)
	r.store.suiteStart(info.CID, info.UID, info.ParentUID)
	if info.Title == BeforeAllTitle {
		sess.hidden[info.UID] = true
	}
	if r.config.Instant() && !sess.hidden[info.UID] {
		r.printSuiteTitle(sess, info.UID, info.Title)
	}
}

func (r *Reporter) onSuiteEnd(ev *Event) {
	if !r.store.suiteEnd(ev.Suite.CID) {
		r.logger.Warn("suite end without matching start", "cid", ev.Suite.CID)
	}
}

func (r *Reporter) onSetCurrentID(ev *Event) {
	r.store.session(ev.Test.CID).currentTest = ev.Test.ID
}

func (r *Reporter) onTest(ev *Event) {
	t := ev.Test
	sess := r.store.session(t.CID)
	r.store.testState(t.CID, t.State)
	for _, o := range r.observers {
		o.ObserveTestState(t.CID, t.State)
	}

	suite := t.ParentUID
	if suite == "" {
		suite = sess.currentSuite()
	}
	if r.config.Instant() && !sess.hidden[suite] {
		r.printTestTitle(sess, t)
	}
	if r.config.ReportErrorsInstantly && isFailureState(t.State) {
		for _, line := range r.failureBlock(t) {
			r.println(sess, line)
		}
	}
}

func (r *Reporter) onStepStart(ev *Event) {
	sess := r.store.session(ev.Step.CID)
	if r.config.Instant() {
		r.printStep(sess, ev.Step)
	}
	sess.stepDepth++
}

func (r *Reporter) onStepEnd(ev *Event) {
	sess := r.store.session(ev.Step.CID)
	if sess.stepDepth == 0 {
		r.logger.Warn("step end without matching start", "cid", ev.Step.CID)
		return
	}
	sess.stepDepth--
}

func (r *Reporter) onRetry(ev *Event) {
	sess := r.store.session(ev.Step.CID)
	sess.stepDepth = 0
	if r.config.Instant() {
		r.printRetry(sess, ev.Step)
	}
}

func (r *Reporter) onRetryValidateFailure(ev *Event) {
	r.addValidation(ev.Message, true)
}

func (r *Reporter) onValidateFailure(ev *Event) {
	r.addValidation(ev.Message, false)
}

// addValidation collects a validation failure for the buffered block and
// echoes it in instant mode. Messages without cid belong to the session of
// the latest event.
func (r *Reporter) addValidation(msg *Assertion, retrying bool) {
	cid := msg.CID
	if cid == "" {
		cid = r.lastCID
	}
	sess := r.store.session(cid)
	v := validationFailure{assertion: msg.Assertion, retrying: retrying}
	sess.validations = append(sess.validations, v)
	if r.config.Instant() {
		r.println(sess, r.validationLine(v))
	}
}

func (r *Reporter) onRunnerEnd(ev *Event) {
	cid := ev.Runner.CID
	sess := r.store.session(cid)
	stats, ok := r.registry.Runner(cid)
	if !ok {
		stats = &RunnerStats{CID: cid, Specs: sess.specs}
	}

	r.summaries = append(r.summaries, SessionSummary{
		CID:         cid,
		SessionID:   stats.SessionID,
		Environment: DescribeCapabilities(stats.Capabilities, false),
		Specs:       stats.Specs,
		Tally:       sess.tally,
		Duration:    stats.Duration,
		Failures:    stats.Failures,
	})

	if r.config.Instant() {
		lines := append([]string{""}, r.summaryLines(sess.tally, stats.Duration)...)
		lines = append(lines, r.closingLines(sess, stats, false)...)
		r.printBlock(tagLines(sess.phaseTag(), lines))
	} else {
		r.printBlock(r.composeSuiteResult(cid, sess.phaseTag()))
	}
	sess.flushed = true
}

func (r *Reporter) onEnd(*Event) {
	if r.ended {
		return
	}
	r.ended = true
	if err := r.epilogue.Print(r.summaries); err != nil {
		r.logger.Error("failed to print epilogue", "error", err)
	}
}
