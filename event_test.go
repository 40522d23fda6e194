package calcute_test

import (
	"testing"

	"github.com/zephyrtronium/calcute"
)

func TestEventForTag(t *testing.T) {
	cases := []struct {
		tag  int
		want calcute.Event
	}{
		{0, calcute.Digit(0)},
		{9, calcute.Digit(9)},
		{10, calcute.Point},
		{20, calcute.ClearAll},
		{21, calcute.DeleteLast},
		{30, calcute.Operator(calcute.Divide)},
		{31, calcute.Operator(calcute.Subtract)},
		{32, calcute.Operator(calcute.Add)},
		{33, calcute.Operator(calcute.Multiply)},
		{34, calcute.Equals},
		{-1, calcute.Unknown},
		{11, calcute.Unknown},
		{22, calcute.Unknown},
		{35, calcute.Unknown},
	}
	for _, c := range cases {
		if got := calcute.EventForTag(c.tag); got != c.want {
			t.Errorf("tag %d: want %v, got %v", c.tag, c.want, got)
		}
	}
}

func TestEventForRune(t *testing.T) {
	cases := []struct {
		r    rune
		want calcute.Event
	}{
		{'7', calcute.Digit(7)},
		{'.', calcute.Point},
		{',', calcute.Point},
		{'÷', calcute.Operator(calcute.Divide)},
		{'/', calcute.Operator(calcute.Divide)},
		{'x', calcute.Operator(calcute.Multiply)},
		{'×', calcute.Operator(calcute.Multiply)},
		{'-', calcute.Operator(calcute.Subtract)},
		{'+', calcute.Operator(calcute.Add)},
		{'=', calcute.Equals},
		{'\n', calcute.Equals},
		{'C', calcute.ClearAll},
		{'\b', calcute.DeleteLast},
		{'a', calcute.Unknown},
	}
	for _, c := range cases {
		if got := calcute.EventForRune(c.r); got != c.want {
			t.Errorf("rune %q: want %v, got %v", c.r, c.want, got)
		}
	}
}

func TestEventConstructors(t *testing.T) {
	if ev := calcute.Digit(10); ev != calcute.Unknown {
		t.Errorf("Digit(10) = %v, want Unknown", ev)
	}
	if ev := calcute.Operator(calcute.Op(7)); ev != calcute.Unknown {
		t.Errorf("Operator(7) = %v, want Unknown", ev)
	}
	if s := calcute.Operator(calcute.Multiply).String(); s != "Operator(Multiply)" {
		t.Errorf("wrong string %q", s)
	}
}

func TestOpForms(t *testing.T) {
	cases := []struct {
		op      calcute.Op
		machine byte
		glyph   string
	}{
		{calcute.Divide, '/', "÷"},
		{calcute.Subtract, '-', "-"},
		{calcute.Add, '+', "+"},
		{calcute.Multiply, '*', "×"},
	}
	for _, c := range cases {
		if m := c.op.Machine(); m != c.machine {
			t.Errorf("%v: want machine %q, got %q", c.op, c.machine, m)
		}
		if g := c.op.Glyph(); g != c.glyph {
			t.Errorf("%v: want glyph %q, got %q", c.op, c.glyph, g)
		}
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"", false},
		{"1", true},
		{"1.5", true},
		{"1.5+2/3*4-5", true},
		{".1", false},
		{"1.", false},
		{"1+", false},
		{"+1", false},
		{"-1", false},
		{"1++1", false},
		{"1.1.1", false},
		{"1.1+.1", false},
	}
	for _, c := range cases {
		if got := calcute.Valid(c.s); got != c.want {
			t.Errorf("Valid(%q): want %t, got %t", c.s, c.want, got)
		}
	}
}
