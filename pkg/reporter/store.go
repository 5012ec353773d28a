package reporter

import "strings"

// indentUnit is the whitespace added per nesting level.
const indentUnit = "  "

// Tally counts the tests observed in each state for one runner session.
type Tally struct {
	Passing    int
	Pending    int
	Failing    int
	Broken     int
	Unresolved int
}

// Total returns the number of counted tests.
func (t Tally) Total() int {
	return t.Passing + t.Pending + t.Failing + t.Broken + t.Unresolved
}

// add increments exactly one counter. Unrecognized states are unresolved.
func (t *Tally) add(state State) {
	switch state {
	case StatePass:
		t.Passing++
	case StatePending:
		t.Pending++
	case StateFail:
		t.Failing++
	case StateBroken:
		t.Broken++
	default:
		t.Unresolved++
	}
}

// validationFailure is an assertion reported outside of a test.
type validationFailure struct {
	assertion string
	retrying  bool
}

// session is the per-cid state of the store.
type session struct {
	cid         string
	indents     int
	depths      map[string]int
	open        []string
	hidden      map[string]bool
	specs       []string
	tally       Tally
	specPhase   bool
	specRunSeen bool

	// flushed is set once the block of the current phase was printed.
	flushed     bool
	currentTest string
	stepDepth   int
	validations []validationFailure
}

// currentSuite returns the uid of the innermost open suite.
func (s *session) currentSuite() string {
	if len(s.open) == 0 {
		return ""
	}
	return s.open[len(s.open)-1]
}

func (s *session) phaseTag() string {
	if s.specPhase {
		return specTag
	}
	return testcaseTag
}

// store owns every runner session and the failure number counter shared by
// all of them.
type store struct {
	sessions map[string]*session
	failures int
}

func newStore() *store {
	return &store{sessions: make(map[string]*session)}
}

// session returns the state of cid, creating it on first use.
func (s *store) session(cid string) *session {
	sess, ok := s.sessions[cid]
	if !ok {
		sess = &session{cid: cid, depths: make(map[string]int), hidden: make(map[string]bool)}
		s.sessions[cid] = sess
	}
	return sess
}

// beginSpecRun reports whether this is the first runner start of cid since
// the spec phase began, and marks it seen.
func (s *store) beginSpecRun(cid string) bool {
	sess := s.session(cid)
	if !sess.specPhase || sess.specRunSeen {
		return false
	}
	sess.specRunSeen = true
	return true
}

// runStart resets the tally and suite depths of cid even when they already
// existed; suite uids may repeat across runs.
func (s *store) runStart(cid string, specs []string) {
	sess := s.session(cid)
	sess.tally = Tally{}
	sess.depths = make(map[string]int)
	sess.hidden = make(map[string]bool)
	if len(specs) > 0 {
		sess.specs = specs
	}
	sess.flushed = false
	sess.indents = 0
	sess.open = nil
	sess.stepDepth = 0
	sess.validations = nil
}

// suiteStart assigns the depth of uid once and increments the nesting counter.
func (s *store) suiteStart(cid, uid, parentUID string) int {
	sess := s.session(cid)
	depth, ok := sess.depths[uid]
	if !ok {
		parent, known := sess.depths[parentUID]
		if !known {
			parent = sess.indents
		}
		depth = parent + 1
		sess.depths[uid] = depth
	}
	sess.indents++
	sess.open = append(sess.open, uid)
	return depth
}

// suiteEnd decrements the nesting counter. It returns false when the end was
// unbalanced; the counter is clamped at zero.
func (s *store) suiteEnd(cid string) bool {
	sess := s.session(cid)
	if sess.indents == 0 {
		return false
	}
	sess.indents--
	if len(sess.open) > 0 {
		sess.open = sess.open[:len(sess.open)-1]
	}
	return true
}

// testState counts one test of cid.
func (s *store) testState(cid string, state State) {
	s.session(cid).tally.add(state)
}

// indent returns the padding of uid. Depth 0 and depth 1 both yield no
// padding.
func (s *store) indent(cid, uid string) string {
	depth := s.session(cid).depths[uid]
	if depth <= 1 {
		return ""
	}
	return strings.Repeat(indentUnit, depth-1)
}

// nextFailureNumber advances the shared failure counter.
func (s *store) nextFailureNumber() int {
	s.failures++
	return s.failures
}
