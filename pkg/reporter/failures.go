package reporter

import (
	"fmt"
	"strings"
)

// defaultErrorMessage stands in for a failing test delivered without error.
const defaultErrorMessage = "unknown error"

// failureLines renders numbered blocks for tests in the supplied order,
// separated by blank lines.
func (r *Reporter) failureLines(tests []*TestRecord) []string {
	var lines []string
	for i, t := range tests {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, r.failureBlock(t)...)
	}
	return lines
}

// failureBlock renders the header and every error of one failing test. A test
// that never got a glyph takes the next failure number here.
func (r *Reporter) failureBlock(t *TestRecord) []string {
	if t.number == 0 {
		t.number = r.store.nextFailureNumber()
	}
	lines := []string{strings.TrimSpace(fmt.Sprintf("%d) %s:", t.number, strings.TrimSpace(t.Title)))}

	errs := t.errorList()
	if len(errs) == 0 {
		errs = []ErrorRecord{{Message: defaultErrorMessage}}
	}

	stateColor := colorFor(string(t.State))
	for _, e := range errs {
		tag := stateColor
		switch {
		case e.Unresolved:
			tag = ColorUnresolved
		case e.MatcherName == "" && e.Stack != "":
			tag = ColorException
		}

		if r.config.CleanStackTraces {
			e = CleanStack(e, r.config.StackFilters)
		}

		for _, line := range strings.Split(strings.TrimSpace(e.Message), "\n") {
			lines = append(lines, r.paint(tag, line))
		}
		if e.Stack == "" {
			continue
		}
		for _, line := range strings.Split(e.Stack, "\n") {
			lines = append(lines, r.paint(ColorMuted, line))
		}
	}
	return lines
}
