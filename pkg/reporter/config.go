package reporter

// LogLevel controls how much of the pre-spec phase is echoed in instant mode.
type LogLevel string

const (
	// LogLevelQuiet prints only banners before the spec phase.
	LogLevelQuiet LogLevel = ""
	// LogLevelTestcases adds suite and test titles.
	LogLevelTestcases LogLevel = "testcases"
	// LogLevelSteps adds step lines on top of titles.
	LogLevelSteps LogLevel = "steps"
)

// Variant carries the terminology that differs between reporter flavours.
type Variant struct {
	// Name is the value used in configuration ("verified" or "validated").
	Name string
	// UnresolvedLabel is the summary label of the unresolved bucket.
	UnresolvedLabel string
	// PendingLabel is the summary label of the pending bucket.
	PendingLabel string
}

var (
	VariantVerified = Variant{
		Name:            "verified",
		UnresolvedLabel: "unverified",
		PendingLabel:    "skipped",
	}
	VariantValidated = Variant{
		Name:            "validated",
		UnresolvedLabel: "unvalidated",
		PendingLabel:    "skipped",
	}
)

// VariantByName returns the variant registered under name. Unknown and empty
// names resolve to VariantVerified.
func VariantByName(name string) Variant {
	if name == VariantValidated.Name {
		return VariantValidated
	}
	return VariantVerified
}

// Config holds the recognized reporter options.
// Settings are merged from all sources (last wins); booleans only ever switch
// a feature on.
type Config struct {
	// ReportResultsInstantly renders titles as events arrive instead of one
	// block per runner at runner:end.
	ReportResultsInstantly bool

	// InstantReport is an alias of ReportResultsInstantly.
	InstantReport bool

	// ReportErrorsInstantly prints a failure block right after the failing
	// test, in addition to the final list.
	ReportErrorsInstantly bool

	// CleanStackTraces keeps only call-frame lines of user code in stacks.
	CleanStackTraces bool

	// ConsoleLogLevel gates title and step output before the spec phase.
	ConsoleLogLevel LogLevel

	// Hostname is the remote grid host. Recognized providers get a job link.
	Hostname string

	// Variant selects the terminology, see VariantByName.
	Variant string

	// StackFilters are extra substrings marking internal stack frames.
	StackFilters []string

	// NoColor disables colored output of the default printer.
	NoColor bool
}

// Instant reports whether instant mode is enabled by either option name.
func (c *Config) Instant() bool {
	return c.ReportResultsInstantly || c.InstantReport
}

// MergeConfigs combines multiple configs into one.
// Later configs override earlier ones (last wins).
func MergeConfigs(configs ...*Config) *Config {
	result := &Config{}

	for _, cfg := range configs {
		if cfg == nil {
			continue
		}

		if cfg.ReportResultsInstantly {
			result.ReportResultsInstantly = true
		}
		if cfg.InstantReport {
			result.InstantReport = true
		}
		if cfg.ReportErrorsInstantly {
			result.ReportErrorsInstantly = true
		}
		if cfg.CleanStackTraces {
			result.CleanStackTraces = true
		}
		if cfg.NoColor {
			result.NoColor = true
		}
		if cfg.ConsoleLogLevel != LogLevelQuiet {
			result.ConsoleLogLevel = cfg.ConsoleLogLevel
		}
		if cfg.Hostname != "" {
			result.Hostname = cfg.Hostname
		}
		if cfg.Variant != "" {
			result.Variant = cfg.Variant
		}
		if len(cfg.StackFilters) > 0 {
			result.StackFilters = append(result.StackFilters, cfg.StackFilters...)
		}
	}

	return result
}
