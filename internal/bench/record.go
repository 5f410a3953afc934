package bench

import (
	"strconv"

	"github.com/raphi011/sortbench/internal/prompt"
	"github.com/raphi011/sortbench/internal/registry"
)

// Record is the configuration handed to the benchmark runner.
// MinElements and MaxElements are independent; the runner decides what
// to do when max < min.
type Record struct {
	Algorithm   registry.Entry
	Index       int // menu number that selected Algorithm
	UseMacraffs bool
	MinElements int64
	MaxElements int64
}

// Collect runs the prompts in order and returns the resulting record.
// It only fails when reading input fails.
func Collect(p *prompt.Prompter, reg *registry.Registry, message string) (Record, error) {
	sel, err := p.SelectAlgorithm(message, reg)
	if err != nil {
		return Record{}, err
	}

	macraffs, err := p.ConfirmMacraffs()
	if err != nil {
		return Record{}, err
	}

	lo, err := p.MinElements()
	if err != nil {
		return Record{}, err
	}

	hi, err := p.MaxElements()
	if err != nil {
		return Record{}, err
	}

	return Record{
		Algorithm:   sel.Entry,
		Index:       sel.Index,
		UseMacraffs: macraffs,
		MinElements: lo,
		MaxElements: hi,
	}, nil
}

// Values returns the placeholder values for r, keyed by placeholder name.
func (r Record) Values() map[string]string {
	return map[string]string{
		"function": r.Algorithm.Function,
		"name":     r.Algorithm.Name,
		"index":    strconv.Itoa(r.Index),
		"stable":   yesNo(r.Algorithm.Stable),
		"macraffs": yesNo(r.UseMacraffs),
		"min":      strconv.FormatInt(r.MinElements, 10),
		"max":      strconv.FormatInt(r.MaxElements, 10),
	}
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
