// Package prompt provides the line-based prompts used to collect a
// benchmark configuration.
//
// Every prompt follows the same loop: print the question, read one line,
// validate it, and either return a typed value or print a corrective
// message and ask again. Invalid input never leaves this package; the only
// errors returned to callers come from the input channel itself (for
// example EOF when stdin is closed).
//
// Available prompts:
//   - [Prompter.SelectAlgorithm]: numbered menu over a [registry.Registry]
//   - [Prompter.Confirm] and [Prompter.ConfirmMacraffs]: strict y/n gate
//   - [Prompter.Count], [Prompter.MinElements], [Prompter.MaxElements]:
//     bounded element counts with a default on empty input
package prompt
