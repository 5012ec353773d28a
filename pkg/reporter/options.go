package reporter

// Option configures a Reporter.
type Option func(*Reporter)

// WithConfig sets the reporter configuration.
func WithConfig(cfg *Config) Option {
	return func(r *Reporter) {
		if cfg != nil {
			r.config = cfg
		}
	}
}

// WithLogger sets the logger for reporter diagnostics.
func WithLogger(logger Logger) Option {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// WithPrinter sets the line-write primitive and color theme.
func WithPrinter(printer Printer) Option {
	return func(r *Reporter) {
		r.printer = printer
	}
}

// WithRegistry sets the results registry. A registry implementing Recorder is
// fed every event before (or, for runner:start, after) the handlers run.
func WithRegistry(registry ResultsRegistry) Option {
	return func(r *Reporter) {
		r.registry = registry
	}
}

// WithEpilogue sets the routine invoked once on the end event.
func WithEpilogue(epilogue Epilogue) Option {
	return func(r *Reporter) {
		r.epilogue = epilogue
	}
}

// WithObserver registers an observer of events and test states.
func WithObserver(observer Observer) Option {
	return func(r *Reporter) {
		r.observers = append(r.observers, observer)
	}
}

// WithDurationFormatter replaces HumanizeDuration.
func WithDurationFormatter(format DurationFormatter) Option {
	return func(r *Reporter) {
		r.formatDuration = format
	}
}
