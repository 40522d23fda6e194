package calcute

import "strconv"

// Failure is an error state the engine can display. Failures are never
// returned as errors; they replace the displayed text until the next input.
type Failure int

const (
	NoFailure Failure = iota
	// InvalidExpression means the expression could not be evaluated. The
	// expression is discarded.
	InvalidExpression
	// InfiniteNumber means evaluation overflowed or divided by zero. The
	// expression is kept for editing.
	InfiniteNumber
	// InvalidNumber means evaluation gave NaN, e.g. 0/0. The expression is
	// kept for editing.
	InvalidNumber
	// UnknownOperation means the engine received an Unknown event. The
	// expression is discarded.
	UnknownOperation
)

func (f Failure) String() string {
	switch f {
	case NoFailure:
		return "NoFailure"
	case InvalidExpression:
		return "InvalidExpression"
	case InfiniteNumber:
		return "InfiniteNumber"
	case InvalidNumber:
		return "InvalidNumber"
	case UnknownOperation:
		return "UnknownOperation"
	default:
		return "Failure(" + strconv.Itoa(int(f)) + ")"
	}
}

// keeps reports whether the failure leaves the machine expression intact.
func (f Failure) keeps() bool {
	return f == InfiniteNumber || f == InvalidNumber
}

// Locale controls the display form: the decimal separator shown for points the
// user types and the message shown for each failure. Every message must contain
// at least one letter; the engine recognizes a displayed failure that way.
type Locale struct {
	// Decimal replaces '.' in display-form expressions. It must not be a
	// letter.
	Decimal rune
	// Messages maps each failure to its displayed text.
	Messages map[Failure]string
}

// PortugueseBR is the default locale.
var PortugueseBR = Locale{
	Decimal: ',',
	Messages: map[Failure]string{
		InvalidExpression: "expressão inválida",
		InfiniteNumber:    "número infinito",
		InvalidNumber:     "resultado inválido",
		UnknownOperation:  "operação desconhecida",
	},
}

// English uses a '.' separator and English messages.
var English = Locale{
	Decimal: '.',
	Messages: map[Failure]string{
		InvalidExpression: "invalid expression",
		InfiniteNumber:    "infinite number",
		InvalidNumber:     "invalid result",
		UnknownOperation:  "unknown operation",
	},
}

// message returns the text for f, falling back to its name.
func (l *Locale) message(f Failure) string {
	if m := l.Messages[f]; m != "" {
		return m
	}
	return f.String()
}
