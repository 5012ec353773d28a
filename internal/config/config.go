// Package config loads the reporter configuration file.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/denizgursoy/specreporter/pkg/reporter"
)

// DefaultFileName is looked up in the working directory when no file is given.
const DefaultFileName = "specreporter.yaml"

// ErrInvalidConfig is returned when a configuration file does not match the schema.
var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed schema.json
var schemaData []byte

var (
	fileSchema  *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// File mirrors the keys of a configuration file.
type File struct {
	ReportResultsInstantly bool     `yaml:"reportResultsInstantly"`
	InstantReport          bool     `yaml:"instantReport"`
	ReportErrorsInstantly  bool     `yaml:"reportErrorsInstantly"`
	CleanStackTraces       bool     `yaml:"cleanStackTraces"`
	ConsoleLogLevel        string   `yaml:"consoleLogLevel"`
	Hostname               string   `yaml:"hostname"`
	Variant                string   `yaml:"variant"`
	StackFilters           []string `yaml:"stackFilters"`
	NoColor                bool     `yaml:"noColor"`
	MetricsFile            string   `yaml:"metricsFile"`
	HTMLReport             string   `yaml:"htmlReport"`
}

// Reporter converts the file into reporter options.
func (f *File) Reporter() *reporter.Config {
	return &reporter.Config{
		ReportResultsInstantly: f.ReportResultsInstantly,
		InstantReport:          f.InstantReport,
		ReportErrorsInstantly:  f.ReportErrorsInstantly,
		CleanStackTraces:       f.CleanStackTraces,
		ConsoleLogLevel:        reporter.LogLevel(f.ConsoleLogLevel),
		Hostname:               f.Hostname,
		Variant:                f.Variant,
		StackFilters:           f.StackFilters,
		NoColor:                f.NoColor,
	}
}

func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}

		fileSchema, err = compiler.Compile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
		}
	})

	return compileErr
}

// Load reads and validates the file at path. An empty path loads
// DefaultFileName when it exists and returns an empty File otherwise.
func Load(path string) (*File, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFileName); err != nil {
			return &File{}, nil
		}
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse validates YAML data against the embedded schema and decodes it.
func Parse(data []byte) (*File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &File{}, nil
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &f, nil
}

// validate checks data against the schema. YAML is converted to its JSON
// form first so the validator sees JSON types only.
func validate(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := fileSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
