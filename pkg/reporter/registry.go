package reporter

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// specNamespace scopes the name-based uuids used as spec hashes.
var specNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("specreporter/spec"))

// SpecHash returns a stable identifier of a spec file list.
func SpecHash(specs []string) string {
	return uuid.NewSHA1(specNamespace, []byte(strings.Join(specs, "\n"))).String()
}

// Registry is an in-memory ResultsRegistry fed from the event stream.
type Registry struct {
	mu      sync.Mutex
	now     func() time.Time
	runners map[string]*runnerRecord
}

// recordedTest remembers which suite a test arrived in.
type recordedTest struct {
	test  *TestRecord
	suite string
}

type runnerRecord struct {
	cid          string
	sessionID    string
	capabilities *Capabilities
	specs        []string
	specHash     string
	suites       map[string][]*SuiteNode
	tests        map[string][]recordedTest
	open         []*SuiteNode
	started      time.Time
	ended        time.Time
}

// NewRegistry creates an empty registry. now stamps events that carry no
// time; nil means time.Now.
func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		now:     now,
		runners: make(map[string]*runnerRecord),
	}
}

func (g *Registry) runner(cid string) *runnerRecord {
	rec, ok := g.runners[cid]
	if !ok {
		rec = &runnerRecord{
			cid:    cid,
			suites: make(map[string][]*SuiteNode),
			tests:  make(map[string][]recordedTest),
		}
		g.runners[cid] = rec
	}
	return rec
}

// Record updates the registry with one event.
func (g *Registry) Record(ev *Event) {
	g.mu.Lock()
	defer g.mu.Unlock()

	at := ev.Time
	if at.IsZero() {
		at = g.now()
	}

	switch ev.Name {
	case EventRunnerInit:
		if ev.Runner != nil {
			g.updateRunner(ev.Runner)
		}
	case EventRunnerStart:
		if ev.Runner == nil {
			return
		}
		rec := g.updateRunner(ev.Runner)
		rec.specHash = SpecHash(rec.specs)
		rec.suites[rec.specHash] = nil
		rec.tests[rec.specHash] = nil
		rec.open = nil
		rec.started = at
		rec.ended = time.Time{}
	case EventSuiteStart:
		if ev.Suite == nil {
			return
		}
		rec := g.runner(ev.Suite.CID)
		node := &SuiteNode{UID: ev.Suite.UID, Title: ev.Suite.Title, Depth: len(rec.open) + 1}
		rec.suites[rec.specHash] = append(rec.suites[rec.specHash], node)
		rec.open = append(rec.open, node)
	case EventSuiteEnd:
		if ev.Suite == nil {
			return
		}
		rec := g.runner(ev.Suite.CID)
		if len(rec.open) > 0 {
			rec.open = rec.open[:len(rec.open)-1]
		}
	case EventTestPending, EventTestPass, EventTestFail, EventTestBroken, EventTestUnresolved:
		if ev.Test == nil {
			return
		}
		rec := g.runner(ev.Test.CID)
		entry := recordedTest{test: ev.Test}
		if suite := rec.parentOf(ev.Test); suite != nil {
			suite.Tests = append(suite.Tests, ev.Test)
			entry.suite = suite.UID
		}
		rec.tests[rec.specHash] = append(rec.tests[rec.specHash], entry)
	case EventRunnerEnd:
		if ev.Runner == nil {
			return
		}
		g.runner(ev.Runner.CID).ended = at
	}
}

func (g *Registry) updateRunner(info *RunnerInfo) *runnerRecord {
	rec := g.runner(info.CID)
	if info.SessionID != "" {
		rec.sessionID = info.SessionID
	}
	if info.Capabilities != nil {
		rec.capabilities = info.Capabilities
	}
	if len(info.Specs) > 0 {
		rec.specs = info.Specs
	}
	return rec
}

// parentOf returns the suite a test belongs to: the suite named by its
// ParentUID, otherwise the innermost open suite.
func (rec *runnerRecord) parentOf(t *TestRecord) *SuiteNode {
	if t.ParentUID != "" {
		for _, s := range rec.suites[rec.specHash] {
			if s.UID == t.ParentUID {
				return s
			}
		}
	}
	if len(rec.open) == 0 {
		return nil
	}
	return rec.open[len(rec.open)-1]
}

// Runner returns the stats of cid for the spec it currently runs.
func (g *Registry) Runner(cid string) (*RunnerStats, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.runners[cid]
	if !ok {
		return nil, false
	}

	stats := &RunnerStats{
		CID:          rec.cid,
		SessionID:    rec.sessionID,
		Capabilities: rec.capabilities,
		Specs:        rec.specs,
		SpecHash:     rec.specHash,
		Suites:       rec.suites[rec.specHash],
		Failures:     filterFailures(rec.tests[rec.specHash]),
	}
	if !rec.started.IsZero() {
		end := rec.ended
		if end.IsZero() {
			end = g.now()
		}
		stats.Duration = end.Sub(rec.started)
	}
	return stats, true
}

// filterFailures keeps the last attempt of every test and returns those that
// still fail, ordered by the arrival of that attempt.
func filterFailures(tests []recordedTest) []*TestRecord {
	last := make(map[string]int, len(tests))
	for i, rt := range tests {
		last[rt.key()] = i
	}

	failures := make([]*TestRecord, 0)
	for i, rt := range tests {
		if last[rt.key()] != i || !isFailureState(rt.test.State) {
			continue
		}
		failures = append(failures, rt.test)
	}
	return failures
}

func (rt recordedTest) key() string {
	if rt.test.ID != "" {
		return rt.test.ID
	}
	return rt.suite + "\x00" + rt.test.Title
}
