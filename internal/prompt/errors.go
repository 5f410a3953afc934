package prompt

import "fmt"

// Kind classifies why a line of input was rejected.
type Kind int

const (
	// NotAnInteger means the line contains something other than ASCII digits.
	NotAnInteger Kind = iota + 1
	// OutOfRange means the line is a numeral outside the accepted bounds.
	OutOfRange
	// NotABooleanLiteral means the line is neither "y" nor "n".
	NotABooleanLiteral
)

func (k Kind) String() string {
	switch k {
	case NotAnInteger:
		return "not an integer"
	case OutOfRange:
		return "out of range"
	case NotABooleanLiteral:
		return "not a boolean literal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// InputError is returned by the parse functions for a rejected line.
// Message is the corrective text shown to the operator before re-prompting.
type InputError struct {
	Kind    Kind
	Input   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Input)
}
