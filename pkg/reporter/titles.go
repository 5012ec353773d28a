package reporter

import "strings"

// titlesVisible reports whether suite and test titles are echoed in instant
// mode. Before the spec phase this depends on the console log level.
func (r *Reporter) titlesVisible(sess *session) bool {
	if sess.specPhase {
		return true
	}
	return r.config.ConsoleLogLevel == LogLevelTestcases || r.config.ConsoleLogLevel == LogLevelSteps
}

// stepsVisible reports whether step lines are echoed in instant mode.
func (r *Reporter) stepsVisible(sess *session) bool {
	return !sess.specPhase && r.config.ConsoleLogLevel == LogLevelSteps
}

// println writes one line prefixed by the phase tag of sess.
func (r *Reporter) println(sess *session, line string) {
	r.printer.Println(sess.phaseTag() + line)
}

// printBlock writes a composed block line by line.
func (r *Reporter) printBlock(block string) {
	if block == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(block, "\n"), "\n") {
		r.printer.Println(line)
	}
}

// printBanner announces a new runner session.
func (r *Reporter) printBanner(sess *session, info *RunnerInfo) {
	sessionID, caps := info.SessionID, info.Capabilities
	if stats, ok := r.registry.Runner(sess.cid); ok {
		if sessionID == "" {
			sessionID = stats.SessionID
		}
		if caps == nil {
			caps = stats.Capabilities
		}
	}
	for _, line := range r.headerLines(sess.specPhase, sessionID, sess.specs, caps) {
		r.println(sess, line)
	}
}

// printSuiteTitle echoes a suite title at its depth.
func (r *Reporter) printSuiteTitle(sess *session, uid, title string) {
	if !r.titlesVisible(sess) {
		return
	}
	r.println(sess, r.store.indent(sess.cid, uid)+r.paint(ColorTitle, strings.TrimSpace(title)))
}

// printTestTitle echoes a test glyph and title one level below its suite.
func (r *Reporter) printTestTitle(sess *session, t *TestRecord) {
	if !r.titlesVisible(sess) {
		return
	}
	r.println(sess, r.testIndent(sess, t)+r.testLine(t))
}

// testIndent is the padding of a test: its suite's padding plus one level.
func (r *Reporter) testIndent(sess *session, t *TestRecord) string {
	uid := t.ParentUID
	if uid == "" {
		uid = sess.currentSuite()
	}
	return r.store.indent(sess.cid, uid) + indentUnit
}

// printStep echoes a step line and nests subsequent steps below it.
func (r *Reporter) printStep(sess *session, step *StepInfo) {
	if !r.stepsVisible(sess) {
		return
	}
	line := strings.TrimSpace(step.Title)
	if step.Description != "" {
		line += ": " + step.Description
	}
	if step.Arg != "" {
		line += " " + r.paint(ColorMuted, step.Arg)
	}
	pad := r.store.indent(sess.cid, sess.currentSuite()) + strings.Repeat(indentUnit, sess.stepDepth+1)
	r.println(sess, pad+line)
}

// printRetry re-prints the header of the testcase being retried.
func (r *Reporter) printRetry(sess *session, step *StepInfo) {
	if !r.titlesVisible(sess) {
		return
	}
	title := strings.TrimSpace(step.Title)
	if title == "" {
		title = sess.currentTest
	}
	r.println(sess, r.store.indent(sess.cid, sess.currentSuite())+r.paint(ColorMuted, "Retrying: "+title))
}
