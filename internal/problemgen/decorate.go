package problemgen

import "log/slog"

// ValidatingGenerator runs a validator chain over every generated question
// and serves the fallback when a check fails.
type ValidatingGenerator struct {
	inner      Generator
	validators []Validator
	logger     *slog.Logger
}

// WithValidation wraps g with cfg's validators plus any validators g itself
// provides.
func WithValidation(g Generator, cfg Config, logger *slog.Logger) Generator {
	vs := append([]Validator(nil), cfg.Validators...)
	if p, ok := g.(ValidatorProvider); ok {
		vs = append(vs, p.Validators()...)
	}
	return &ValidatingGenerator{inner: g, validators: vs, logger: logger}
}

func (v *ValidatingGenerator) Generate(r Rand, in GenerateInput) Question {
	q := v.inner.Generate(r, in)
	if verr := RunValidators(v.validators, &q, in); verr != nil {
		v.logger.Warn("generated question rejected",
			"validator", verr.Validator,
			"reason", verr.Message,
			"display", q.Display)
		return WithFallback(v.inner.Fallback(in), in.Level)
	}
	return q
}

func (v *ValidatingGenerator) Fallback(in GenerateInput) Question { return v.inner.Fallback(in) }

func (v *ValidatingGenerator) Key(q Question) string { return v.inner.Key(q) }

// LoggingGenerator is a decorator that records every generated question.
type LoggingGenerator struct {
	inner  Generator
	tool   string
	logger *slog.Logger
}

// WithLogging wraps a Generator with structured logging.
func WithLogging(g Generator, tool string, logger *slog.Logger) Generator {
	return &LoggingGenerator{inner: g, tool: tool, logger: logger}
}

func (l *LoggingGenerator) Generate(r Rand, in GenerateInput) Question {
	q := l.inner.Generate(r, in)
	q.Tool = l.tool
	if q.Fallback {
		l.logger.Warn("constraint search exhausted, serving fallback",
			"tool", l.tool, "level", in.Level)
	}
	l.logger.Debug("question generated",
		"tool", l.tool,
		"level", in.Level,
		"dropdown", in.Config.Dropdown,
		"key", l.inner.Key(q),
		"fallback", q.Fallback)
	return q
}

func (l *LoggingGenerator) Fallback(in GenerateInput) Question {
	q := l.inner.Fallback(in)
	q.Tool = l.tool
	return q
}

func (l *LoggingGenerator) Key(q Question) string { return l.inner.Key(q) }
