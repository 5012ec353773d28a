package reporter

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// HTMLEpilogue writes a self-contained HTML run summary to a file. Sessions
// with failures are listed first.
type HTMLEpilogue struct {
	path           string
	variant        Variant
	formatDuration DurationFormatter
	now            func() time.Time
}

func NewHTMLEpilogue(path string, variant Variant, format DurationFormatter) *HTMLEpilogue {
	if format == nil {
		format = HumanizeDuration
	}
	return &HTMLEpilogue{path: path, variant: variant, formatDuration: format, now: time.Now}
}

type failureView struct {
	Number   int
	Title    string
	Messages []string
	Stack    string
}

type sessionView struct {
	CID         string
	SessionID   string
	Environment string
	Specs       string
	Tally       Tally
	Duration    string
	CSSClass    string
	Failures    []failureView
}

// htmlReportData is the view model passed to the HTML template.
type htmlReportData struct {
	ExecutedAt      string
	SessionCount    int
	Total           Tally
	PendingLabel    string
	UnresolvedLabel string
	Sessions        []sessionView
}

func buildHTMLReportData(sessions []SessionSummary, variant Variant, format DurationFormatter, executedAt time.Time) htmlReportData {
	data := htmlReportData{
		ExecutedAt:      executedAt.Format("2006-01-02 15:04:05"),
		SessionCount:    countSessions(sessions),
		PendingLabel:    variant.PendingLabel,
		UnresolvedLabel: variant.UnresolvedLabel,
	}

	for _, s := range sessions {
		view := sessionView{
			CID:         s.CID,
			SessionID:   s.SessionID,
			Environment: s.Environment,
			Specs:       strings.Join(s.Specs, ", "),
			Tally:       s.Tally,
			Duration:    format(s.Duration),
			CSSClass:    "passed",
		}
		if len(s.Failures) > 0 || s.Tally.Failing+s.Tally.Broken+s.Tally.Unresolved > 0 {
			view.CSSClass = "failed"
		}
		for _, t := range s.Failures {
			fv := failureView{Number: t.FailureNumber(), Title: strings.TrimSpace(t.Title)}
			errs := t.errorList()
			if len(errs) == 0 {
				errs = []ErrorRecord{{Message: defaultErrorMessage}}
			}
			for _, e := range errs {
				fv.Messages = append(fv.Messages, strings.TrimSpace(e.Message))
				if fv.Stack == "" {
					fv.Stack = e.Stack
				}
			}
			view.Failures = append(view.Failures, fv)
		}
		data.Sessions = append(data.Sessions, view)

		data.Total.Passing += s.Tally.Passing
		data.Total.Pending += s.Tally.Pending
		data.Total.Failing += s.Tally.Failing
		data.Total.Broken += s.Tally.Broken
		data.Total.Unresolved += s.Tally.Unresolved
	}

	sort.SliceStable(data.Sessions, func(i, j int) bool {
		return data.Sessions[i].CSSClass == "failed" && data.Sessions[j].CSSClass != "failed"
	})
	return data
}

// Print writes the report. Nothing is written when no session finished.
func (e *HTMLEpilogue) Print(sessions []SessionSummary) error {
	if len(sessions) == 0 {
		return nil
	}

	dir := filepath.Dir(e.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create report directory %q: %w", dir, err)
		}
	}

	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"summaryClass": func(total Tally) string {
			if total.Failing+total.Broken+total.Unresolved > 0 {
				return "has-failures"
			}
			return "all-passed"
		},
	}).Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("could not parse HTML template: %w", err)
	}

	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("could not create report file %q: %w", e.path, err)
	}
	defer f.Close()

	data := buildHTMLReportData(sessions, e.variant, e.formatDuration, e.now())
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("could not render HTML report: %w", err)
	}
	return nil
}

// Epilogues combines several epilogues. Every one is invoked even when an
// earlier one fails; the errors are joined.
func Epilogues(list ...Epilogue) Epilogue {
	return epilogueChain(list)
}

type epilogueChain []Epilogue

func (c epilogueChain) Print(sessions []SessionSummary) error {
	var errs []error
	for _, e := range c {
		if err := e.Print(sessions); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Run Summary</title>
<style>
  *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #f8f9fa; color: #212529; line-height: 1.6; padding: 2rem;
  }
  h1 { font-size: 1.5rem; margin-bottom: 0.25rem; font-weight: 700; }
  .executed-at { font-size: 0.8rem; color: #868e96; margin-bottom: 1.5rem; }
  .summary {
    display: flex; gap: 1rem; flex-wrap: wrap;
    margin-bottom: 2rem; padding: 1rem 1.25rem; background: #fff;
    border-radius: 10px; border: 1px solid #e9ecef;
  }
  .summary.all-passed { border: 2px solid #2b8a3e; background: #f6fef7; }
  .summary.has-failures { border: 2px solid #c92a2a; background: #fff5f5; }
  .summary-item { text-align: center; min-width: 90px; }
  .summary-item .number { font-size: 1.8rem; font-weight: 700; }
  .summary-item .label {
    font-size: 0.7rem; text-transform: uppercase; letter-spacing: 0.05em; color: #868e96;
  }
  .number.green  { color: #2b8a3e; }
  .number.red    { color: #c92a2a; }
  .number.yellow { color: #e67700; }
  .number.purple { color: #862e9c; }
  .number.blue   { color: #1864ab; }
  .session {
    margin-bottom: 1rem; background: #fff; border-radius: 8px;
    border: 1px solid #e9ecef; overflow: hidden;
  }
  .session.passed { border-left: 4px solid #69db7c; }
  .session.failed { border-left: 4px solid #ff6b6b; }
  .session-header {
    display: flex; justify-content: space-between; padding: 0.6rem 1rem;
  }
  .session-name { font-weight: 600; font-size: 0.9rem; }
  .session-meta { font-size: 0.78rem; color: #868e96; }
  .failures { background: #1e1f22; padding: 0.5rem 1rem 0.75rem 1rem; }
  .failure {
    font-family: "JetBrains Mono", "Fira Code", "SF Mono", monospace;
    font-size: 0.82rem; color: #BCBEC4; margin-bottom: 0.5rem;
  }
  .failure-title { color: #ff4444; font-weight: 700; }
  .failure pre { color: #7a7e85; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>Run Summary</h1>
<div class="executed-at">Executed at {{.ExecutedAt}}</div>

<div class="summary {{summaryClass .Total}}">
  <div class="summary-item"><div class="number blue">{{.SessionCount}}</div><div class="label">Sessions</div></div>
  <div class="summary-item"><div class="number green">{{.Total.Passing}}</div><div class="label">Passing</div></div>
  <div class="summary-item"><div class="number yellow">{{.Total.Pending}}</div><div class="label">{{.PendingLabel}}</div></div>
  <div class="summary-item"><div class="number red">{{.Total.Failing}}</div><div class="label">Failing</div></div>
  <div class="summary-item"><div class="number red">{{.Total.Broken}}</div><div class="label">Broken</div></div>
  <div class="summary-item"><div class="number purple">{{.Total.Unresolved}}</div><div class="label">{{.UnresolvedLabel}}</div></div>
</div>

{{range .Sessions}}
<div class="session {{.CSSClass}}">
  <div class="session-header">
    <span class="session-name">{{.CID}} {{.Specs}}</span>
    <span class="session-meta">{{.Environment}}{{if .SessionID}} &middot; {{.SessionID}}{{end}} &middot; {{.Duration}}</span>
  </div>
  <div class="session-header session-meta">
    {{.Tally.Passing}} passing, {{.Tally.Pending}} {{$.PendingLabel}}, {{.Tally.Failing}} failing, {{.Tally.Broken}} broken, {{.Tally.Unresolved}} {{$.UnresolvedLabel}}
  </div>
  {{if .Failures}}
  <div class="failures">
    {{range .Failures}}
    <div class="failure">
      <div class="failure-title">{{.Number}}) {{.Title}}</div>
      {{range .Messages}}<div>{{.}}</div>{{end}}
      {{if .Stack}}<pre>{{.Stack}}</pre>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
</div>
{{end}}
</body>
</html>
`
