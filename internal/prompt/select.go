package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raphi011/sortbench/internal/registry"
	"github.com/raphi011/sortbench/internal/ui/styles"
)

// DefaultAlgorithmMessage is the question shown above the algorithm menu.
const DefaultAlgorithmMessage = "Which sorting algorithm would you like to benchmark ?"

// Selection is the menu entry picked by the operator.
type Selection struct {
	Entry registry.Entry
	Index int // 1-based menu number that was typed
}

// SelectAlgorithm shows message followed by one numbered line per registry
// entry and reads until a menu number in [1, reg.Len()] is entered.
//
// With an empty registry no input is ever accepted; the loop only ends when
// reading fails.
func (p *Prompter) SelectAlgorithm(message string, reg *registry.Registry) (Selection, error) {
	n := reg.Len()

	render := func() {
		p.println(styles.QuestionStyle, strings.TrimSuffix(message, "\n"))
		for i := 0; i < n; i++ {
			fmt.Fprintf(p.out, "%s %s\n", styles.MenuIndexStyle.Render(fmt.Sprintf("[%d]", i+1)), reg.Algorithms[i].Name)
		}
	}

	index, err := ask(p, render, func(line string) (int, error) {
		return ParseMenuIndex(line, n)
	})
	if err != nil {
		return Selection{}, err
	}

	sel := Selection{Entry: reg.Algorithms[index-1], Index: index}
	p.println(styles.SelectedStyle, fmt.Sprintf("You selected [%d] %s.", sel.Index, sel.Entry.Name))
	return sel, nil
}

// ParseMenuIndex validates a menu number for a menu of n entries.
// Leading zeros are accepted; signs and whitespace are not.
func ParseMenuIndex(line string, n int) (int, error) {
	if !isDigits(line) {
		return 0, &InputError{
			Kind:    NotAnInteger,
			Input:   line,
			Message: "Invalid input. Please input a positive integer.",
		}
	}

	outOfRange := &InputError{
		Kind:    OutOfRange,
		Input:   line,
		Message: fmt.Sprintf("Invalid input. Please input a positive integer in the range [1,%d].", n),
	}

	// Digits only, so a parse error can only be overflow.
	v, err := strconv.ParseInt(line, 10, 64)
	if err != nil || v < 1 || v > int64(n) {
		return 0, outOfRange
	}
	return int(v), nil
}
