package feature

import (
	messages "github.com/cucumber/messages/go/v21"
	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
)

func extractTagNames(tags []*messages.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func mergeTags(parent, child []string) []string {
	merged := make([]string, 0, len(parent)+len(child))
	merged = append(merged, parent...)
	return append(merged, child...)
}

// filterDocumentByTags returns a copy of doc keeping only the scenarios whose
// own tags, together with the inherited feature and rule tags, satisfy
// evaluator. Backgrounds are kept; rules without scenarios left are dropped.
func filterDocumentByTags(doc *messages.GherkinDocument, evaluator tagexpressions.Evaluatable) *messages.GherkinDocument {
	if evaluator == nil || doc.Feature == nil {
		return doc
	}

	featureTags := extractTagNames(doc.Feature.Tags)
	children := make([]*messages.FeatureChild, 0, len(doc.Feature.Children))
	for _, child := range doc.Feature.Children {
		switch {
		case child.Background != nil:
			children = append(children, child)
		case child.Scenario != nil:
			if evaluator.Evaluate(mergeTags(featureTags, extractTagNames(child.Scenario.Tags))) {
				children = append(children, child)
			}
		case child.Rule != nil:
			if rule := filterRuleByTags(child.Rule, featureTags, evaluator); rule != nil {
				children = append(children, &messages.FeatureChild{Rule: rule})
			}
		}
	}

	feature := *doc.Feature
	feature.Children = children
	filtered := *doc
	filtered.Feature = &feature
	return &filtered
}

func filterRuleByTags(rule *messages.Rule, featureTags []string, evaluator tagexpressions.Evaluatable) *messages.Rule {
	ruleTags := mergeTags(featureTags, extractTagNames(rule.Tags))
	children := make([]*messages.RuleChild, 0, len(rule.Children))
	scenarios := 0
	for _, child := range rule.Children {
		switch {
		case child.Background != nil:
			children = append(children, child)
		case child.Scenario != nil:
			if evaluator.Evaluate(mergeTags(ruleTags, extractTagNames(child.Scenario.Tags))) {
				children = append(children, child)
				scenarios++
			}
		}
	}
	if scenarios == 0 {
		return nil
	}

	filtered := *rule
	filtered.Children = children
	return &filtered
}
