package reporter

import (
	"fmt"
	"strings"
	"time"
)

// Phase tags prefixing every line of a block
const (
	specTag     = "[SPEC] "
	testcaseTag = "[TESTCASE] "
)

const separatorWidth = 68

var separator = strings.Repeat("-", separatorWidth)

// SuiteResult composes the end-of-run block of cid for its current phase.
// It returns an empty string when the runner reported no suites.
func (r *Reporter) SuiteResult(cid string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.composeSuiteResult(cid, r.store.session(cid).phaseTag())
}

// composeSuiteResult builds the buffered block: header, tree, summary,
// failures, validation failures and job link, every line prefixed by tag.
func (r *Reporter) composeSuiteResult(cid, tag string) string {
	stats, ok := r.registry.Runner(cid)
	if !ok || len(stats.Suites) == 0 {
		return ""
	}
	sess := r.store.session(cid)

	lines := r.headerLines(tag == specTag, stats.SessionID, stats.Specs, stats.Capabilities)
	lines = append(lines, "")

	tally := sess.tally
	for _, suite := range stats.Suites {
		if suite.IsBeforeAll() {
			for _, t := range suite.Tests {
				if t.State == StateUnset {
					tally.Pending++
				}
			}
			continue
		}

		indent := r.store.indent(cid, suite.UID)
		lines = append(lines, indent+r.paint(ColorTitle, strings.TrimSpace(suite.Title)))
		for _, t := range suite.Tests {
			lines = append(lines, indent+indentUnit+r.testLine(t))
		}
		lines = append(lines, "")
	}

	lines = append(lines, r.summaryLines(tally, stats.Duration)...)
	lines = append(lines, r.closingLines(sess, stats, true)...)
	return tagLines(tag, lines)
}

// closingLines renders what follows the summary: failures, collected
// validation failures and the job link.
func (r *Reporter) closingLines(sess *session, stats *RunnerStats, withValidations bool) []string {
	var lines []string
	if len(stats.Failures) > 0 {
		lines = append(lines, "")
		lines = append(lines, r.failureLines(stats.Failures)...)
	}
	if withValidations && len(sess.validations) > 0 {
		lines = append(lines, "", "Validation failures:")
		for _, v := range sess.validations {
			lines = append(lines, indentUnit+r.validationLine(v))
		}
	}
	if link := JobLink(r.config.Hostname, stats.SessionID); link != "" {
		lines = append(lines, "", "Check out job at "+link)
	}
	return lines
}

// headerLines renders the separator, session id and phase line.
func (r *Reporter) headerLines(specPhase bool, sessionID string, specs []string, caps *Capabilities) []string {
	lines := []string{separator}
	if sessionID != "" {
		lines = append(lines, "Session ID: "+sessionID)
	}
	return append(lines, phaseLine(specPhase, specs, caps))
}

func phaseLine(specPhase bool, specs []string, caps *Capabilities) string {
	files := strings.Join(specs, ", ")
	if specPhase {
		return "Spec: " + files
	}
	line := "Testcase: " + files
	if desc := DescribeCapabilities(caps, true); desc != "" {
		line += " (" + desc + ")"
	}
	return line
}

// testLine renders the colored glyph and title of one test.
func (r *Reporter) testLine(t *TestRecord) string {
	line := r.paint(colorFor(string(t.State)), r.testSymbol(t)) + " " + strings.TrimSpace(t.Title)
	if t.Retries > 0 {
		line += fmt.Sprintf(" (retry %d)", t.Retries)
	}
	return line
}

// summaryLines renders one line per non-empty bucket. The duration is
// attached to the first rendered line only.
func (r *Reporter) summaryLines(tally Tally, d time.Duration) []string {
	buckets := []struct {
		label string
		color string
		count int
	}{
		{"passing", "passing", tally.Passing},
		{r.variant.PendingLabel, "pending", tally.Pending},
		{"failing", "failing", tally.Failing},
		{"broken", "broken", tally.Broken},
		{r.variant.UnresolvedLabel, "unresolved", tally.Unresolved},
	}

	var lines []string
	for _, b := range buckets {
		if b.count == 0 {
			continue
		}
		text := fmt.Sprintf("%d %s", b.count, b.label)
		if len(lines) == 0 {
			text += " (" + r.formatDuration(d) + ")"
		}
		lines = append(lines, r.paint(colorFor(b.color), text))
	}
	return lines
}

func (r *Reporter) validationLine(v validationFailure) string {
	if v.retrying {
		return r.paint(ColorMuted, "Validation failed, retrying: "+v.assertion)
	}
	return r.paint(ColorBroken, "Validation failed: "+v.assertion)
}

// JobLink returns the URL of a hosted session when hostname belongs to a
// recognized provider, otherwise an empty string.
func JobLink(hostname, sessionID string) string {
	if sessionID == "" {
		return ""
	}
	host := strings.ToLower(hostname)
	switch {
	case strings.Contains(host, "saucelabs"):
		// ondemand.<region>.saucelabs.com
		parts := strings.Split(host, ".")
		if len(parts) == 4 && parts[0] == "ondemand" && parts[1] != "us-west-1" {
			return "https://app." + parts[1] + ".saucelabs.com/tests/" + sessionID
		}
		return "https://app.saucelabs.com/tests/" + sessionID
	case strings.Contains(host, "browserstack"):
		return "https://automate.browserstack.com/sessions/" + sessionID
	case strings.Contains(host, "testingbot"):
		return "https://testingbot.com/members/tests/" + sessionID
	}
	return ""
}

// tagLines prefixes every line with tag and joins them into one block.
func tagLines(tag string, lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(tag)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
