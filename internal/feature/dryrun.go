package feature

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
	"github.com/google/uuid"

	"github.com/denizgursoy/specreporter/pkg/reporter"
)

// Handler consumes the generated events.
type Handler interface {
	Handle(ev *reporter.Event) error
}

// DryRun reports every scenario of a set of feature files as pending. Each
// file becomes its own runner session.
type DryRun struct {
	handler            Handler
	featureDirectories []string
	tagExpression      string
	newID              func() string
	now                func() time.Time
	logger             reporter.Logger
}

func NewDryRun(handler Handler) *DryRun {
	return &DryRun{
		handler: handler,
		newID:   uuid.NewString,
		now:     time.Now,
		logger:  reporter.NopLogger(),
	}
}

func (d *DryRun) WithFeaturesDirectories(directories ...string) *DryRun {
	d.featureDirectories = directories

	return d
}

// WithTags restricts the run to scenarios matching a tag expression such as
// "(@smoke or @ui) and not @slow".
func (d *DryRun) WithTags(expression string) *DryRun {
	d.tagExpression = expression

	return d
}

func (d *DryRun) WithIDFunc(newID func() string) *DryRun {
	if newID != nil {
		d.newID = newID
	}

	return d
}

func (d *DryRun) WithClock(now func() time.Time) *DryRun {
	if now != nil {
		d.now = now
	}

	return d
}

func (d *DryRun) WithLogger(logger reporter.Logger) *DryRun {
	if logger != nil {
		d.logger = logger
	}

	return d
}

// Run emits the events of every feature file followed by a single end event.
func (d *DryRun) Run(ctx context.Context) error {
	var evaluator tagexpressions.Evaluatable
	if d.tagExpression != "" {
		parsed, err := tagexpressions.Parse(d.tagExpression)
		if err != nil {
			return fmt.Errorf("invalid tag expression %q: %w", d.tagExpression, err)
		}
		evaluator = parsed
	}

	directories := d.featureDirectories
	if len(directories) == 0 {
		directories = []string{"."}
	}

	featureFiles, err := SearchFeatureFilesIn(directories)
	if err != nil {
		return err
	}

	session := 0
	for _, file := range featureFiles {
		if err := ctx.Err(); err != nil {
			return err
		}

		readFile, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read file %s, error=%w", file, err)
		}
		document, err := ParseGherkinFile(bytes.NewReader(readFile), d.newID)
		if err != nil {
			return fmt.Errorf("gherkin parse error in file %s, error=%w", file, err)
		}
		document.Uri = file

		document = filterDocumentByTags(document, evaluator)
		pickles := gherkin.Pickles(*document, document.Uri, d.newID)
		if len(pickles) == 0 {
			d.logger.Debug("skipping feature without matching scenarios", "file", file)
			continue
		}

		cid := fmt.Sprintf("0-%d", session)
		session++
		if err := d.emitFeature(cid, document, pickles); err != nil {
			return err
		}
	}

	return d.handler.Handle(&reporter.Event{Name: reporter.EventEnd, Time: d.now()})
}

// featureRun emits the events of one feature file.
type featureRun struct {
	*DryRun
	cid     string
	byAstID map[string][]*messages.Pickle
}

func (d *DryRun) emitFeature(cid string, document *messages.GherkinDocument, pickles []*messages.Pickle) error {
	run := &featureRun{
		DryRun:  d,
		cid:     cid,
		byAstID: make(map[string][]*messages.Pickle, len(pickles)),
	}
	for _, pickle := range pickles {
		if len(pickle.AstNodeIds) > 0 {
			scenarioID := pickle.AstNodeIds[0]
			run.byAstID[scenarioID] = append(run.byAstID[scenarioID], pickle)
		}
	}

	specs := []string{document.Uri}
	if err := run.emit(&reporter.Event{Name: reporter.EventRunnerInit, Runner: &reporter.RunnerInfo{CID: cid, Specs: specs}}); err != nil {
		return err
	}
	start := &reporter.RunnerInfo{CID: cid, Specs: specs, SessionID: d.newID()}
	if err := run.emit(&reporter.Event{Name: reporter.EventRunnerStart, Runner: start}); err != nil {
		return err
	}

	feature := document.Feature
	featureUID := document.Uri
	if err := run.suiteStart(featureUID, "", feature.Keyword+": "+feature.Name); err != nil {
		return err
	}
	for _, child := range feature.Children {
		var err error
		switch {
		case child.Scenario != nil:
			err = run.scenario(featureUID, child.Scenario)
		case child.Rule != nil:
			err = run.rule(featureUID, child.Rule)
		}
		if err != nil {
			return err
		}
	}
	if err := run.suiteEnd(featureUID); err != nil {
		return err
	}

	return run.emit(&reporter.Event{Name: reporter.EventRunnerEnd, Runner: &reporter.RunnerInfo{CID: cid, Specs: specs}})
}

func (f *featureRun) rule(parentUID string, rule *messages.Rule) error {
	if err := f.suiteStart(rule.Id, parentUID, rule.Keyword+": "+rule.Name); err != nil {
		return err
	}
	for _, child := range rule.Children {
		if child.Scenario == nil {
			continue
		}
		if err := f.scenario(rule.Id, child.Scenario); err != nil {
			return err
		}
	}
	return f.suiteEnd(rule.Id)
}

// scenario reports the pickles of a scenario. Outlines yield one test per
// example row.
func (f *featureRun) scenario(parentUID string, scenario *messages.Scenario) error {
	for _, pickle := range f.byAstID[scenario.Id] {
		err := f.emit(&reporter.Event{
			Name: reporter.EventTestPending,
			Test: &reporter.TestRecord{
				CID:       f.cid,
				ID:        pickle.Id,
				ParentUID: parentUID,
				Title:     pickle.Name,
				State:     reporter.StatePending,
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *featureRun) suiteStart(uid, parentUID, title string) error {
	return f.emit(&reporter.Event{
		Name:  reporter.EventSuiteStart,
		Suite: &reporter.SuiteInfo{CID: f.cid, UID: uid, ParentUID: parentUID, Title: title},
	})
}

func (f *featureRun) suiteEnd(uid string) error {
	return f.emit(&reporter.Event{
		Name:  reporter.EventSuiteEnd,
		Suite: &reporter.SuiteInfo{CID: f.cid, UID: uid},
	})
}

func (f *featureRun) emit(ev *reporter.Event) error {
	ev.Time = f.now()
	if err := f.handler.Handle(ev); err != nil {
		return fmt.Errorf("%s: %w", ev.Name, err)
	}
	return nil
}
