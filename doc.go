// Package calcute implements the core of a four-function pocket calculator.
//
// An Engine receives discrete key events (digits, the decimal point,
// operators, delete, clear, equals) and builds up an expression such as
// "12,5×3" for display, alongside its machine form "12.5*3". Equals evaluates
// the expression strictly left to right, so "2+3×4" gives 20, the way a simple
// calculator chains operations, not 14.
//
// Errors never escape the engine. Division by zero, an undefined result, or
// an unparseable expression replaces the display with a message which the next
// key press clears.
//
package calcute
