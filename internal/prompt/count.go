package prompt

import (
	"fmt"
	"strconv"

	"github.com/raphi011/sortbench/internal/ui/styles"
)

const (
	// MaxCountDigits is the longest accepted digit string.
	MaxCountDigits = 13

	// DefaultMinElements is returned by MinElements on an empty line.
	DefaultMinElements int64 = 1

	// DefaultMaxElements is returned by MaxElements on an empty line.
	DefaultMaxElements int64 = 1_048_576
)

// CountSpec describes one element-count prompt.
type CountSpec struct {
	Intro    []string // lines printed before the question
	Question string
	Default  int64 // returned for an empty line
}

// MinElementsSpec is the prompt for the smallest benchmarked input size.
var MinElementsSpec = CountSpec{
	Question: "What will be the minimum number of elements to sort for this benchmark ? [default: 1]",
	Default:  DefaultMinElements,
}

// MaxElementsSpec is the prompt for the largest benchmarked input size.
var MaxElementsSpec = CountSpec{
	Intro: []string{
		"The number of elements to be sorted will be multiplied by two at each round, until it exceeds the maximum number.",
	},
	Question: "What will be the maximum number of elements to sort for this benchmark ? [default: 1048576]",
	Default:  DefaultMaxElements,
}

// Count asks the question in spec until an empty line or a count of at
// most MaxCountDigits digits and at least 1 is entered.
func (p *Prompter) Count(spec CountSpec) (int64, error) {
	render := func() {
		for _, line := range spec.Intro {
			fmt.Fprintln(p.out, line)
		}
		p.println(styles.QuestionStyle, spec.Question)
	}
	return ask(p, render, func(line string) (int64, error) {
		return ParseCount(line, spec.Default)
	})
}

// MinElements asks for the minimum number of elements to sort.
func (p *Prompter) MinElements() (int64, error) {
	return p.Count(MinElementsSpec)
}

// MaxElements asks for the maximum number of elements to sort.
// It is not checked against the minimum.
func (p *Prompter) MaxElements() (int64, error) {
	return p.Count(MaxElementsSpec)
}

// ParseCount returns def for an empty line, otherwise the value of a digit
// string shorter than 14 characters that is at least 1. Leading zeros are
// accepted.
func ParseCount(line string, def int64) (int64, error) {
	if line == "" {
		return def, nil
	}

	kind := OutOfRange
	if isDigits(line) {
		if len(line) <= MaxCountDigits {
			v, err := strconv.ParseInt(line, 10, 64)
			if err == nil && v >= 1 {
				return v, nil
			}
		}
	} else {
		kind = NotAnInteger
	}

	return 0, &InputError{
		Kind:    kind,
		Input:   line,
		Message: fmt.Sprintf("Type a number between 1 and 9 999 999 999 999 or hit return for default value of %d.", def),
	}
}
