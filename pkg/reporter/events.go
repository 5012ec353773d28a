package reporter

import "time"

// EventName identifies a lifecycle event emitted by the test runner.
type EventName string

const (
	EventStartSpecs           EventName = "startSpecs"
	EventRunnerInit           EventName = "runner:init"
	EventRunnerStart          EventName = "runner:start"
	EventSuiteStart           EventName = "suite:start"
	EventSuiteEnd             EventName = "suite:end"
	EventTestSetCurrentID     EventName = "test:setCurrentId"
	EventTestPending          EventName = "test:pending"
	EventTestPass             EventName = "test:pass"
	EventTestFail             EventName = "test:fail"
	EventTestBroken           EventName = "test:broken"
	EventTestUnresolved       EventName = "test:unresolved"
	EventStepStart            EventName = "step:start"
	EventStepEnd              EventName = "step:end"
	EventRetryFailed          EventName = "retry:failed"
	EventRetryBroken          EventName = "retry:broken"
	EventRetryValidateFailure EventName = "retry:validateFailure"
	EventValidateFailure      EventName = "validate:failure"
	EventRunnerEnd            EventName = "runner:end"
	EventEnd                  EventName = "end"
)

// State is the outcome tag of a test.
type State string

const (
	StateUnset      State = ""
	StatePending    State = "pending"
	StatePass       State = "pass"
	StateFail       State = "fail"
	StateBroken     State = "broken"
	StateUnresolved State = "unresolved"
)

// stateForEvent maps test:* event names to the state they announce.
var stateForEvent = map[EventName]State{
	EventTestPending:    StatePending,
	EventTestPass:       StatePass,
	EventTestFail:       StateFail,
	EventTestBroken:     StateBroken,
	EventTestUnresolved: StateUnresolved,
}

// Capabilities describes the device or browser a runner session executes on.
type Capabilities struct {
	DeviceName      string `json:"deviceName,omitempty"`
	BrowserName     string `json:"browserName,omitempty"`
	Version         string `json:"version,omitempty"`
	BrowserVersion  string `json:"browser_version,omitempty"`
	PlatformVersion string `json:"platformVersion,omitempty"`
	OS              string `json:"os,omitempty"`
	OSVersion       string `json:"os_version,omitempty"`
	Platform        string `json:"platform,omitempty"`
	PlatformName    string `json:"platformName,omitempty"`
	App             string `json:"app,omitempty"`
	AppPackage      string `json:"appPackage,omitempty"`
	BundleID        string `json:"bundleId,omitempty"`
}

// RunnerInfo is the payload of runner:* and startSpecs events.
type RunnerInfo struct {
	CID          string        `json:"cid"`
	Specs        []string      `json:"specs,omitempty"`
	Capabilities *Capabilities `json:"capabilities,omitempty"`
	SessionID    string        `json:"sessionId,omitempty"`
}

// SuiteInfo is the payload of suite:* events.
type SuiteInfo struct {
	CID       string `json:"cid"`
	UID       string `json:"uid,omitempty"`
	ParentUID string `json:"parentUid,omitempty"`
	Title     string `json:"title,omitempty"`
}

// StepInfo is the payload of step:* and retry:failed|broken events.
type StepInfo struct {
	CID         string `json:"cid"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Arg         string `json:"arg,omitempty"`
}

// Assertion is the payload of validation failure events.
type Assertion struct {
	CID       string `json:"cid,omitempty"`
	Assertion string `json:"assertion"`
}

// ErrorRecord is one error attached to a failing test.
type ErrorRecord struct {
	Message     string `json:"message"`
	Stack       string `json:"stack,omitempty"`
	MatcherName string `json:"matcherName,omitempty"`
	Unresolved  bool   `json:"unresolved,omitempty"`
}

// TestRecord is a single test as delivered by the host. The host owns the
// value; the reporter writes back State and the assigned failure number.
type TestRecord struct {
	CID       string        `json:"cid"`
	ID        string        `json:"id,omitempty"`
	ParentUID string        `json:"parentUid,omitempty"`
	Title     string        `json:"title,omitempty"`
	State     State         `json:"state,omitempty"`
	Errors    []ErrorRecord `json:"errs,omitempty"`
	Error     *ErrorRecord  `json:"err,omitempty"`
	Retries   int           `json:"retries,omitempty"`

	number int
}

// FailureNumber returns the number shown next to a failing test, or 0 when
// none has been assigned yet.
func (t *TestRecord) FailureNumber() int {
	return t.number
}

// errorList returns every error of the test, falling back to the single Error.
func (t *TestRecord) errorList() []ErrorRecord {
	if len(t.Errors) > 0 {
		return t.Errors
	}
	if t.Error != nil {
		return []ErrorRecord{*t.Error}
	}
	return nil
}

// SuiteNode is a suite with its tests in arrival order.
type SuiteNode struct {
	UID   string
	Title string
	Depth int
	Tests []*TestRecord
}

// BeforeAllTitle is the title of the synthetic suite holding before-all hooks.
const BeforeAllTitle = `"before all" hook`

// IsBeforeAll reports whether the suite is the synthetic before-all suite.
func (s *SuiteNode) IsBeforeAll() bool {
	return s.Title == BeforeAllTitle
}

// Event is one lifecycle event. Exactly one payload matches the event name;
// the others are nil.
type Event struct {
	Name    EventName   `json:"event"`
	Time    time.Time   `json:"time,omitzero"`
	Runner  *RunnerInfo `json:"runner,omitempty"`
	Suite   *SuiteInfo  `json:"suite,omitempty"`
	Test    *TestRecord `json:"test,omitempty"`
	Step    *StepInfo   `json:"step,omitempty"`
	Message *Assertion  `json:"message,omitempty"`
}

// CID returns the session id carried by whichever payload is set.
func (e *Event) CID() string {
	switch {
	case e.Runner != nil:
		return e.Runner.CID
	case e.Suite != nil:
		return e.Suite.CID
	case e.Test != nil:
		return e.Test.CID
	case e.Step != nil:
		return e.Step.CID
	case e.Message != nil:
		return e.Message.CID
	}
	return ""
}
