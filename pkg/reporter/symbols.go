package reporter

import "strconv"

// ColorTag is a semantic color resolved by the Printer.
type ColorTag string

const (
	ColorNone       ColorTag = ""
	ColorSuccess    ColorTag = "success"
	ColorMuted      ColorTag = "muted"
	ColorFailure    ColorTag = "failure"
	ColorBroken     ColorTag = "broken"
	ColorUnresolved ColorTag = "unresolved"
	ColorException  ColorTag = "exception"
	ColorTitle      ColorTag = "title"
)

// Symbols for test states
const (
	symbolPending = "-"
)

// colorFor maps a test state or a summary bucket name to its color.
// Unknown names map to ColorNone.
func colorFor(state string) ColorTag {
	switch state {
	case "pass", "passing":
		return ColorSuccess
	case "pending":
		return ColorMuted
	case "fail", "failing":
		return ColorFailure
	case "broken":
		return ColorBroken
	case "unresolved", "unverified", "unvalidated":
		return ColorUnresolved
	default:
		return ColorNone
	}
}

// symbolFor returns the glyph of state. Failing, broken and unrecognized
// states consume the next failure number, so it must be called exactly once
// per rendered test.
func (r *Reporter) symbolFor(state State) string {
	switch state {
	case StatePass:
		return r.printer.OKSymbol()
	case StatePending:
		return symbolPending
	default:
		return strconv.Itoa(r.store.nextFailureNumber()) + ")"
	}
}

// testSymbol renders the glyph of t and remembers the failure number on the
// record so the failure list shows the same number.
func (r *Reporter) testSymbol(t *TestRecord) string {
	if t.number > 0 {
		return strconv.Itoa(t.number) + ")"
	}
	symbol := r.symbolFor(t.State)
	if isFailureState(t.State) {
		t.number = r.store.failures
	}
	return symbol
}

// isFailureState reports whether state renders as a numbered failure.
func isFailureState(state State) bool {
	return state != StatePass && state != StatePending
}

// paint colors text by tag, leaving it untouched for ColorNone.
func (r *Reporter) paint(tag ColorTag, text string) string {
	if tag == ColorNone {
		return text
	}
	return r.printer.Colorize(tag, text)
}
