package reporter

import "strings"

// framePrefix marks a call-frame line of a stack trace.
const framePrefix = "at "

// defaultStackFilters are substrings of frames belonging to test tooling.
var defaultStackFilters = []string{
	"node_modules",
	"(internal/",
	"node:internal",
	"/go/src/runtime/",
	"/go/src/testing/",
	"testing/testing.go",
}

// stackSeparators are marker lines some runners put between async frames.
var stackSeparators = []string{
	"---",
	"From previous event:",
}

// CleanStack returns a copy of err whose stack keeps only call frames of user
// code. err itself is not modified, so cleaning twice gives the same result.
func CleanStack(err ErrorRecord, extraFilters []string) ErrorRecord {
	if err.Stack == "" {
		return err
	}

	filters := append(append([]string{}, defaultStackFilters...), extraFilters...)
	lines := strings.Split(err.Stack, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, framePrefix) {
			continue
		}
		if isSeparator(trimmed) || containsAny(trimmed, filters) {
			continue
		}
		kept = append(kept, line)
	}

	cleaned := err
	cleaned.Stack = strings.Join(kept, "\n")
	return cleaned
}

func isSeparator(line string) bool {
	for _, sep := range stackSeparators {
		if strings.HasPrefix(line, sep) {
			return true
		}
	}
	return false
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
