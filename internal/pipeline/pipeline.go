package pipeline

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/ncruces/go-strftime"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
	"git.home.luguber.info/inful/tmpltime/internal/logfields"
)

// Pipeline runs compiled datetime plans. A Pipeline holds no per-call state and is safe for
// concurrent use as long as its collaborators are.
type Pipeline struct {
	clock   Clock
	zones   ZoneResolver
	locales LocaleFormatter
	logger  *slog.Logger
}

// PipelineOption configures pipeline behavior.
type PipelineOption func(*Pipeline)

// WithClock replaces the wall clock used by the default initializer and "local" timezone.
func WithClock(c Clock) PipelineOption {
	return func(p *Pipeline) {
		p.clock = c
	}
}

// WithZoneResolver enables named time zones in with_timezone. A nil resolver disables them.
func WithZoneResolver(r ZoneResolver) PipelineOption {
	return func(p *Pipeline) {
		p.zones = r
	}
}

// WithLocaleFormatter enables the locale option of output_format. A nil formatter disables it.
func WithLocaleFormatter(f LocaleFormatter) PipelineOption {
	return func(p *Pipeline) {
		p.locales = f
	}
}

// WithLogger sets the logger used for debug tracing of plans and failures.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// NewPipeline creates a pipeline with the system clock, IANA zones and monday locales.
func NewPipeline(options ...PipelineOption) *Pipeline {
	p := &Pipeline{
		clock:   SystemClock{},
		zones:   IANAResolver{},
		locales: MondayFormatter{},
		logger:  slog.Default(),
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Run compiles and executes the option set.
func (p *Pipeline) Run(params Params) (string, error) {
	plan, err := Compile(params)
	if err != nil {
		p.logFailure("compile", err)
		return "", err
	}
	return p.Execute(plan)
}

// Write runs the option set and writes the output to w. Nothing is written on failure.
func (p *Pipeline) Write(w io.Writer, params Params) error {
	out, err := p.Run(params)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Execute runs plan: initializer, then modifiers in order, then finalizer. The first failure
// aborts the run.
func (p *Pipeline) Execute(plan *ExecutionPlan) (string, error) {
	for _, key := range plan.Ignored {
		p.logger.LogAttrs(context.Background(), slog.LevelDebug, "Ignoring lower-priority option",
			logfields.Parameter(key),
			logfields.Initializer(plan.Initializer.Key()),
			logfields.Finalizer(plan.Finalizer.Key()))
	}

	t, err := p.initialize(plan.Initializer)
	if err != nil {
		p.logFailure("initializer", err)
		return "", err
	}

	t = t.UTC()
	for _, m := range plan.Modifiers {
		if t, err = p.modify(t, m); err != nil {
			p.logFailure("modifier", err)
			return "", err
		}
	}

	out, err := p.finalize(t, plan.Finalizer)
	if err != nil {
		p.logFailure("finalizer", err)
		return "", err
	}
	return out, nil
}

func (p *Pipeline) initialize(init Initializer) (time.Time, error) {
	switch i := init.(type) {
	case FromTimestamp:
		return fromTimestamp(i)
	case FromRFC2822:
		t, err := parseRFC2822(i.Text)
		if err != nil {
			return time.Time{}, ferrors.InvalidFormat("Invalid RFC2822 datetime format").ForParameter(KeyFromRFC2822).WithCause(err).Build()
		}
		return checkInitial(t, KeyFromRFC2822)
	case FromRFC3339:
		t, err := parseRFC3339(i.Text)
		if err != nil {
			return time.Time{}, ferrors.InvalidFormat("Invalid RFC3339 datetime format").ForParameter(KeyFromRFC3339).WithCause(err).Build()
		}
		return checkInitial(t, KeyFromRFC3339)
	case FromString:
		t, err := parseWithFormat(i.Text, i.Format)
		if err != nil {
			return time.Time{}, ferrors.InvalidFormat("Invalid datetime format or format doesn't match input").ForParameter(KeyFromStr).WithCause(err).Build()
		}
		return checkInitial(t, KeyFromStr)
	case FromNow:
		return p.clock.Now(), nil
	default:
		return time.Time{}, ferrors.InternalError("unknown initializer").WithContext("initializer", init.Key()).Build()
	}
}

func fromTimestamp(i FromTimestamp) (time.Time, error) {
	var (
		t   time.Time
		msg string
	)
	switch i.Unit {
	case Seconds:
		t, msg = time.Unix(i.Value, 0), "Out-of-range number of seconds"
		if i.Value < minInstant.Unix() || i.Value > maxInstant.Unix() {
			return time.Time{}, ferrors.OutOfRange(msg).ForParameter(i.Key()).Build()
		}
	case Millis:
		t, msg = time.UnixMilli(i.Value), "Out-of-range number of milliseconds"
	case Micros:
		t, msg = time.UnixMicro(i.Value), "Number of microseconds would be out of range for a NaiveDateTime (more than ca. 262,000 years away from common era)"
	default:
		// Every int64 count of nanoseconds lies well inside the representable range.
		return time.Unix(0, i.Value), nil
	}
	if !inRange(t) {
		return time.Time{}, ferrors.OutOfRange(msg).ForParameter(i.Key()).Build()
	}
	return t, nil
}

func checkInitial(t time.Time, key string) (time.Time, error) {
	if !inRange(t) {
		return time.Time{}, ferrors.OutOfRange("Datetime out of representable range").ForParameter(key).Build()
	}
	return t, nil
}

func (p *Pipeline) modify(t time.Time, m Modifier) (time.Time, error) {
	switch mod := m.(type) {
	case WithTimezone:
		loc, err := p.resolveTimezone(t, mod.Value)
		if err != nil {
			return t, err
		}
		return t.In(loc), nil
	case SetField:
		return applyField(t, mod)
	case Shift:
		return applyShift(t, mod)
	default:
		return t, ferrors.InternalError("unknown modifier").ForParameter(m.Key()).Build()
	}
}

func (p *Pipeline) finalize(t time.Time, fin Finalizer) (string, error) {
	switch f := fin.(type) {
	case FormatOutput:
		if !f.Localized {
			return strftime.Format(f.Pattern, t), nil
		}
		if p.locales == nil {
			return "", ferrors.UnsupportedCapability("Localized formatting is not enabled for the `locale`=" + f.Locale + " param").
				ForParameter(KeyLocale).
				Build()
		}
		return p.locales.FormatLocalized(t, f.Pattern, f.Locale)
	case RFC2822Output:
		return formatRFC2822(t), nil
	case TimestampOutput:
		return formatTimestamp(t, f.Unit)
	case YearsSince:
		base, err := parseRFC3339(f.Base)
		if err != nil {
			return "", ferrors.InvalidFormat("Invalid RFC3339 datetime format").ForParameter(KeyYearsSince).WithCause(err).Build()
		}
		years, ok := yearsSince(t, base)
		if !ok {
			return "", ferrors.NegativeRange("Negative range, try swapping the parameters.").ForParameter(KeyYearsSince).Build()
		}
		return strconv.Itoa(years), nil
	case RFC3339Output:
		return formatRFC3339(t), nil
	default:
		return "", ferrors.InternalError("unknown finalizer").WithContext("finalizer", fin.Key()).Build()
	}
}

func (p *Pipeline) logFailure(stage string, err error) {
	attrs := []slog.Attr{logfields.Stage(stage), logfields.Error(err)}
	if c, ok := ferrors.AsClassified(err); ok {
		attrs = append(attrs, logfields.Category(string(c.Category())), logfields.Parameter(c.Parameter()))
	}
	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "datetime pipeline failed", attrs...)
}
