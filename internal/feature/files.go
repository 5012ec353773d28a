// Package feature turns Gherkin feature files into reporter events without
// executing any step. Every scenario is reported as a pending test.
package feature

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
)

const (
	FeatureExtension = ".feature"
)

// SearchFeatureFilesIn walks directories and returns every feature file in
// lexical order per directory.
func SearchFeatureFilesIn(directories []string) ([]string, error) {
	featureFiles := make([]string, 0)

	for _, directory := range directories {
		err := filepath.Walk(directory, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.HasSuffix(info.Name(), FeatureExtension) {
				featureFiles = append(featureFiles, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("search feature files in %s: %w", directory, err)
		}
	}
	return featureFiles, nil
}

// ParseGherkinFile parses one feature document. newID generates the ids of
// the document nodes; nil uses incrementing ids.
func ParseGherkinFile(reader io.Reader, newID func() string) (*messages.GherkinDocument, error) {
	if newID == nil {
		newID = (&messages.Incrementing{}).NewId
	}
	document, err := gherkin.ParseGherkinDocument(reader, newID)
	if err != nil {
		return nil, err
	}
	return document, nil
}
