package feature

import (
	"testing"

	messages "github.com/cucumber/messages/go/v21"
	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
	"github.com/stretchr/testify/require"
)

func Test_extractTagNames(t *testing.T) {
	t.Run("extracts tag names with @ prefix", func(t *testing.T) {
		tags := []*messages.Tag{
			{Name: "@smoke"},
			{Name: "@fast"},
		}
		names := extractTagNames(tags)
		require.Equal(t, []string{"@smoke", "@fast"}, names)
	})

	t.Run("returns empty slice for no tags", func(t *testing.T) {
		names := extractTagNames([]*messages.Tag{})
		require.Empty(t, names)
	})
}

func Test_mergeTags(t *testing.T) {
	t.Run("merges parent and child tags", func(t *testing.T) {
		merged := mergeTags([]string{"@feature"}, []string{"@scenario"})
		require.Equal(t, []string{"@feature", "@scenario"}, merged)
	})
}

func scenarioChild(name string, tags ...string) *messages.FeatureChild {
	scenario := &messages.Scenario{Name: name}
	for _, tag := range tags {
		scenario.Tags = append(scenario.Tags, &messages.Tag{Name: tag})
	}
	return &messages.FeatureChild{Scenario: scenario}
}

func Test_filterDocumentByTags(t *testing.T) {
	t.Run("filters scenarios by tag", func(t *testing.T) {
		evaluator, _ := tagexpressions.Parse("@smoke")
		doc := &messages.GherkinDocument{
			Feature: &messages.Feature{
				Children: []*messages.FeatureChild{
					scenarioChild("Smoke Test", "@smoke"),
					scenarioChild("Other Test", "@other"),
				},
			},
		}

		filtered := filterDocumentByTags(doc, evaluator)

		require.Len(t, filtered.Feature.Children, 1)
		require.Equal(t, "Smoke Test", filtered.Feature.Children[0].Scenario.Name)
		require.Len(t, doc.Feature.Children, 2, "input must stay untouched")
	})

	t.Run("inherits feature tags", func(t *testing.T) {
		evaluator, _ := tagexpressions.Parse("@feature")
		doc := &messages.GherkinDocument{
			Feature: &messages.Feature{
				Tags:     []*messages.Tag{{Name: "@feature"}},
				Children: []*messages.FeatureChild{scenarioChild("Test")},
			},
		}

		filtered := filterDocumentByTags(doc, evaluator)
		require.Len(t, filtered.Feature.Children, 1)
	})

	t.Run("handles complex expression with parentheses", func(t *testing.T) {
		evaluator, _ := tagexpressions.Parse("(@smoke or @ui) and not @slow")
		doc := &messages.GherkinDocument{
			Feature: &messages.Feature{
				Children: []*messages.FeatureChild{
					scenarioChild("Smoke Fast", "@smoke"),
					scenarioChild("UI Fast", "@ui"),
					scenarioChild("Smoke Slow", "@smoke", "@slow"),
					scenarioChild("Other", "@other"),
				},
			},
		}

		filtered := filterDocumentByTags(doc, evaluator)
		require.Len(t, filtered.Feature.Children, 2)
		require.Equal(t, "Smoke Fast", filtered.Feature.Children[0].Scenario.Name)
		require.Equal(t, "UI Fast", filtered.Feature.Children[1].Scenario.Name)
	})

	t.Run("preserves background", func(t *testing.T) {
		evaluator, _ := tagexpressions.Parse("@smoke")
		doc := &messages.GherkinDocument{
			Feature: &messages.Feature{
				Children: []*messages.FeatureChild{
					{Background: &messages.Background{Name: "Setup"}},
					scenarioChild("Smoke Test", "@smoke"),
				},
			},
		}

		filtered := filterDocumentByTags(doc, evaluator)
		require.Len(t, filtered.Feature.Children, 2)
		require.NotNil(t, filtered.Feature.Children[0].Background)
	})

	t.Run("filters scenarios within rules with tag inheritance", func(t *testing.T) {
		evaluator, _ := tagexpressions.Parse("@feature and @rule")
		doc := &messages.GherkinDocument{
			Feature: &messages.Feature{
				Tags: []*messages.Tag{{Name: "@feature"}},
				Children: []*messages.FeatureChild{
					{
						Rule: &messages.Rule{
							Tags: []*messages.Tag{{Name: "@rule"}},
							Children: []*messages.RuleChild{
								{Scenario: &messages.Scenario{Name: "Rule Scenario"}},
							},
						},
					},
					{
						Rule: &messages.Rule{
							Tags: []*messages.Tag{{Name: "@other"}},
							Children: []*messages.RuleChild{
								{Scenario: &messages.Scenario{Name: "Dropped"}},
							},
						},
					},
				},
			},
		}

		filtered := filterDocumentByTags(doc, evaluator)
		require.Len(t, filtered.Feature.Children, 1)
		require.NotNil(t, filtered.Feature.Children[0].Rule)
		require.Len(t, filtered.Feature.Children[0].Rule.Children, 1)
	})

	t.Run("returns the document as is without expression", func(t *testing.T) {
		doc := &messages.GherkinDocument{Feature: &messages.Feature{}}

		require.Same(t, doc, filterDocumentByTags(doc, nil))
	})
}
