package prompt

import "github.com/raphi011/sortbench/internal/ui/styles"

// MacraffsQuestion asks whether the benchmark should run through macraffs.
const MacraffsQuestion = "Would-you like to benchmark it using macraffs ? [y/n]"

// Confirm asks question until the operator types exactly "y" or "n".
// There is no default: an empty line is rejected like any other.
func (p *Prompter) Confirm(question string) (bool, error) {
	render := func() {
		p.println(styles.QuestionStyle, question)
	}
	return ask(p, render, ParseConfirm)
}

// ConfirmMacraffs asks whether to benchmark using macraffs.
func (p *Prompter) ConfirmMacraffs() (bool, error) {
	return p.Confirm(MacraffsQuestion)
}

// ParseConfirm maps "y" to true and "n" to false. Case variants and
// surrounding whitespace are rejected.
func ParseConfirm(line string) (bool, error) {
	switch line {
	case "y":
		return true, nil
	case "n":
		return false, nil
	}
	return false, &InputError{
		Kind:    NotABooleanLiteral,
		Input:   line,
		Message: "Type 'y' or 'n' please.",
	}
}
