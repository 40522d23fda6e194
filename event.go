package calcute

import "strconv"

// Kind is the kind of an input event.
type Kind int

const (
	// KindUnknown is any input the engine does not recognize.
	KindUnknown Kind = iota
	KindDigit
	KindPoint
	KindOperator
	KindClearAll
	KindDeleteLast
	KindEquals
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindDigit:
		return "Digit"
	case KindPoint:
		return "Point"
	case KindOperator:
		return "Operator"
	case KindClearAll:
		return "ClearAll"
	case KindDeleteLast:
		return "DeleteLast"
	case KindEquals:
		return "Equals"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is one of the four arithmetic operators.
type Op int

const (
	Divide Op = iota
	Subtract
	Add
	Multiply
)

// Machine returns the operator's character in machine-form expressions.
func (op Op) Machine() byte {
	return "/-+*"[op]
}

// Glyph returns the operator's symbol in display-form expressions.
func (op Op) Glyph() string {
	return [...]string{"÷", "-", "+", "×"}[op]
}

func (op Op) String() string {
	switch op {
	case Divide:
		return "Divide"
	case Subtract:
		return "Subtract"
	case Add:
		return "Add"
	case Multiply:
		return "Multiply"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Event is a single discrete input to an Engine. The zero Event is Unknown.
type Event struct {
	Kind Kind
	// Digit is the value 0-9 for KindDigit events.
	Digit int
	// Op is the operator for KindOperator events.
	Op Op
}

var (
	Unknown    = Event{Kind: KindUnknown}
	Point      = Event{Kind: KindPoint}
	ClearAll   = Event{Kind: KindClearAll}
	DeleteLast = Event{Kind: KindDeleteLast}
	Equals     = Event{Kind: KindEquals}
)

// Digit returns the event for the digit n. If n is not in 0-9, the result is
// Unknown.
func Digit(n int) Event {
	if n < 0 || n > 9 {
		return Unknown
	}
	return Event{Kind: KindDigit, Digit: n}
}

// Operator returns the event for an operator. If op is not one of the four
// operators, the result is Unknown.
func Operator(op Op) Event {
	if op < Divide || op > Multiply {
		return Unknown
	}
	return Event{Kind: KindOperator, Op: op}
}

// valid reports whether e carries a payload in range for its kind.
func (e Event) valid() bool {
	switch e.Kind {
	case KindDigit:
		return 0 <= e.Digit && e.Digit <= 9
	case KindOperator:
		return Divide <= e.Op && e.Op <= Multiply
	default:
		return true
	}
}

func (e Event) String() string {
	switch e.Kind {
	case KindDigit:
		return "Digit(" + strconv.Itoa(e.Digit) + ")"
	case KindOperator:
		return "Operator(" + e.Op.String() + ")"
	default:
		return e.Kind.String()
	}
}

// Button tags of the keypad layout. Digits use their own value as tag.
const (
	TagPoint      = 10
	TagClearAll   = 20
	TagDeleteLast = 21
	TagDivide     = 30
	TagSubtract   = 31
	TagAdd        = 32
	TagMultiply   = 33
	TagEquals     = 34
)

// EventForTag maps a keypad button tag to its event. Unassigned tags map to
// Unknown.
func EventForTag(tag int) Event {
	switch {
	case 0 <= tag && tag <= 9:
		return Digit(tag)
	case tag == TagPoint:
		return Point
	case tag == TagClearAll:
		return ClearAll
	case tag == TagDeleteLast:
		return DeleteLast
	case TagDivide <= tag && tag <= TagMultiply:
		return Operator(Op(tag - TagDivide))
	case tag == TagEquals:
		return Equals
	default:
		return Unknown
	}
}

// EventForRune maps a keyboard character to its event. Both machine and
// display operator symbols are accepted, as are '.' and ',' for the point.
func EventForRune(r rune) Event {
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return Digit(int(r - '0'))
	case '.', ',':
		return Point
	case '/', '÷':
		return Operator(Divide)
	case '-':
		return Operator(Subtract)
	case '+':
		return Operator(Add)
	case '*', 'x', '×':
		return Operator(Multiply)
	case '=', '\n', '\r':
		return Equals
	case 'c', 'C', '\x1b':
		return ClearAll
	case '\b', '\x7f':
		return DeleteLast
	default:
		return Unknown
	}
}

// Events maps each rune of keys to its event.
func Events(keys string) []Event {
	ev := make([]Event, 0, len(keys))
	for _, r := range keys {
		ev = append(ev, EventForRune(r))
	}
	return ev
}
