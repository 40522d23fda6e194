package calcute

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Engine accumulates an expression from input events and evaluates it. It
// keeps two parallel forms of the expression: the machine form, which uses
// ASCII operators and '.', and the display form, which uses the locale's
// decimal separator and operator glyphs. It is not safe to use an Engine
// concurrently.
type Engine struct {
	machine string
	display string
	// held is the display form kept aside while a failure that keeps the
	// machine expression is shown.
	held string
	// armed is whether the next digit is fractional.
	armed   bool
	failure Failure
	locale  Locale
	log     *slog.Logger
}

// Update is the result of handling one event.
type Update struct {
	// Text is the text to display.
	Text string
	// PointArmed is whether the decimal point is armed, for hosts which
	// highlight the point key.
	PointArmed bool
	// Failure is the failure currently displayed, if any.
	Failure Failure
}

// EngineOption is an option used when creating an engine.
type EngineOption interface {
	engineOption()
}

type (
	localeopt Locale
	logopt    struct{ l *slog.Logger }
)

func (localeopt) engineOption() {}
func (logopt) engineOption()    {}

// WithLocale sets the display locale. The default is PortugueseBR.
func WithLocale(l Locale) EngineOption {
	return localeopt(l)
}

// WithLogger sets a logger for failures, which are logged at debug level. By
// default nothing is logged.
func WithLogger(l *slog.Logger) EngineOption {
	return logopt{l}
}

// NewEngine creates an engine with an empty expression.
func NewEngine(opts ...EngineOption) *Engine {
	e := Engine{locale: PortugueseBR}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case localeopt:
			e.locale = Locale(opt)
		case logopt:
			e.log = opt.l
		default:
			panic("calcute: unknown option type")
		}
	}
	if e.log == nil {
		e.log = slog.New(discard{})
	}
	return &e
}

// Machine returns the current machine-form expression.
func (e *Engine) Machine() string {
	return e.machine
}

// Display returns the current displayed text.
func (e *Engine) Display() string {
	return e.display
}

// Handle applies one event and returns what to display. It never fails;
// errors are displayed as locale messages.
func (e *Engine) Handle(ev Event) Update {
	if strings.IndexFunc(e.display, unicode.IsLetter) >= 0 {
		// A failure message is replaced by the next input, not appended to.
		e.display, e.held = e.held, ""
		e.failure = NoFailure
	}
	kind := ev.Kind
	if !ev.valid() {
		kind = KindUnknown
	}
	switch kind {
	case KindDigit:
		e.digit(ev.Digit)
	case KindPoint:
		e.togglePoint()
	case KindOperator:
		e.operator(ev.Op)
	case KindClearAll:
		e.machine, e.display = "", ""
		e.armed = false
	case KindDeleteLast:
		if e.machine != "" && e.display != "" {
			e.machine = e.machine[:len(e.machine)-1]
			e.display = dropLast(e.display)
		}
	case KindEquals:
		e.equals()
	default:
		e.fail(UnknownOperation, slog.String("event", ev.String()))
	}
	if e.armed && !Valid(e.machine+".1") {
		// The expression changed under an armed point, e.g. an operator
		// followed it.
		e.armed = false
	}
	return e.update()
}

func (e *Engine) update() Update {
	return Update{Text: e.display, PointArmed: e.armed, Failure: e.failure}
}

func (e *Engine) digit(n int) {
	d := strconv.Itoa(n)
	if e.armed {
		e.machine += "." + d
		e.display += string(e.locale.Decimal) + d
		e.togglePoint()
		return
	}
	e.machine += d
	e.display += d
}

// togglePoint arms the point if a fractional part may follow the current
// expression and it is not already armed; otherwise it disarms.
func (e *Engine) togglePoint() {
	if Valid(e.machine + ".1") {
		e.armed = !e.armed
	} else {
		e.armed = false
	}
}

func (e *Engine) operator(op Op) {
	if e.machine == "" {
		return
	}
	// A deleted fractional digit can leave a bare point, which needs a digit
	// before an operator may follow.
	if c := e.machine[len(e.machine)-1]; c == '.' || strings.IndexByte(Operators, c) >= 0 {
		return
	}
	e.machine += string(op.Machine())
	e.display += op.Glyph()
}

func (e *Engine) equals() {
	if e.machine == "" {
		return
	}
	if c := e.machine[len(e.machine)-1]; c == '.' || strings.IndexByte(Operators, c) >= 0 {
		e.machine = e.machine[:len(e.machine)-1]
		e.display = dropLast(e.display)
	}
	if !Valid(e.machine) {
		e.fail(InvalidExpression, slog.String("expr", e.machine))
		return
	}
	r, err := EvalString(e.machine)
	if err != nil {
		e.fail(InvalidExpression, slog.String("expr", e.machine), slog.Any("err", err))
		return
	}
	switch {
	case math.IsNaN(r):
		e.fail(InvalidNumber, slog.String("expr", e.machine))
	case math.IsInf(r, 0):
		e.fail(InfiniteNumber, slog.String("expr", e.machine))
	default:
		e.machine = Format(r)
		e.display = e.machine
	}
}

// fail shows a failure. The machine expression is discarded unless the
// failure keeps it, in which case the display form is held until the message
// is replaced.
func (e *Engine) fail(f Failure, attrs ...slog.Attr) {
	e.log.LogAttrs(context.Background(), slog.LevelDebug, "calculation failed",
		append([]slog.Attr{slog.String("failure", f.String())}, attrs...)...)
	if f.keeps() {
		e.held = e.display
	} else {
		e.machine = ""
		e.held = ""
	}
	e.display = e.locale.message(f)
	e.failure = f
	e.armed = false
}

// Format renders a result with no decimals if it is integral and with two
// otherwise.
func Format(r float64) string {
	if r == 0 {
		// Avoid "-0".
		r = 0
	}
	if math.Mod(r, 1) == 0 {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}

// dropLast removes the last rune of s.
func dropLast(s string) string {
	_, n := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-n]
}

// discard is a slog.Handler that drops everything.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }
