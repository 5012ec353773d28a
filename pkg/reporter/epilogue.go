package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TableEpilogue prints one table row per finished session plus totals.
type TableEpilogue struct {
	out            io.Writer
	variant        Variant
	formatDuration DurationFormatter
}

// NewTableEpilogue creates an epilogue writing to out. A nil out writes to
// stdout and a nil format uses HumanizeDuration.
func NewTableEpilogue(out io.Writer, variant Variant, format DurationFormatter) *TableEpilogue {
	if out == nil {
		out = os.Stdout
	}
	if format == nil {
		format = HumanizeDuration
	}
	return &TableEpilogue{out: out, variant: variant, formatDuration: format}
}

// Print renders the sessions. Nothing is printed when no session finished.
func (e *TableEpilogue) Print(sessions []SessionSummary) error {
	if len(sessions) == 0 {
		return nil
	}

	title := cases.Title(language.English)
	t := table.NewWriter()
	t.SetTitle("Run summary")
	t.AppendHeader(table.Row{
		"CID", "Environment", "Specs", "Passing", title.String(e.variant.PendingLabel), "Failing", "Broken",
		title.String(e.variant.UnresolvedLabel), "Duration",
	})
	// columns 4 to 8 hold counts, 9 the duration
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
	})

	var total Tally
	for _, s := range sessions {
		t.AppendRow(table.Row{
			s.CID,
			s.Environment,
			strings.Join(s.Specs, "\n"),
			s.Tally.Passing,
			s.Tally.Pending,
			s.Tally.Failing,
			s.Tally.Broken,
			s.Tally.Unresolved,
			e.formatDuration(s.Duration),
		})
		total.Passing += s.Tally.Passing
		total.Pending += s.Tally.Pending
		total.Failing += s.Tally.Failing
		total.Broken += s.Tally.Broken
		total.Unresolved += s.Tally.Unresolved
	}

	t.AppendFooter(table.Row{
		"TOTAL",
		fmt.Sprintf("%d session(s)", countSessions(sessions)),
		"",
		total.Passing,
		total.Pending,
		total.Failing,
		total.Broken,
		total.Unresolved,
		"",
	})
	t.SetStyle(table.StyleLight)

	_, err := fmt.Fprintln(e.out, t.Render())
	return err
}

// countSessions returns the number of distinct cids. A cid that ran both
// testcases and specs has two summaries.
func countSessions(sessions []SessionSummary) int {
	seen := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		seen[s.CID] = struct{}{}
	}
	return len(seen)
}
