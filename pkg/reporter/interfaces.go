//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=reporter
package reporter

import "time"

type (
	// Printer is the line-write primitive together with the color theme.
	Printer interface {
		Println(line string)
		Colorize(tag ColorTag, text string) string
		OKSymbol() string
	}

	// ResultsRegistry exposes what the host knows about each runner session.
	ResultsRegistry interface {
		Runner(cid string) (*RunnerStats, bool)
	}

	// Recorder is implemented by registries that build their state from the
	// same event stream the reporter consumes.
	Recorder interface {
		Record(ev *Event)
	}

	// Epilogue renders the run-wide summary once all sessions completed.
	Epilogue interface {
		Print(sessions []SessionSummary) error
	}

	// Observer is notified of every dispatched event and test state.
	Observer interface {
		ObserveEvent(name EventName)
		ObserveTestState(cid string, state State)
	}
)

// RunnerStats is a read-only view of one runner session in the registry.
type RunnerStats struct {
	CID          string
	SessionID    string
	Capabilities *Capabilities
	Specs        []string
	SpecHash     string
	// Suites of the spec identified by SpecHash, in start order.
	Suites []*SuiteNode
	// Failures is the filtered failure list in arrival order.
	Failures []*TestRecord
	Duration time.Duration
}

// SessionSummary is what the epilogue receives for each finished session.
type SessionSummary struct {
	CID         string
	SessionID   string
	Environment string
	Specs       []string
	Tally       Tally
	Duration    time.Duration
	// Failures of the last attempt, numbered as printed.
	Failures []*TestRecord
}
