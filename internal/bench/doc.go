// Package bench assembles a benchmark configuration from the interactive
// prompts and hands it to the external benchmark runner.
//
// [Collect] asks the four questions in order (algorithm, macraffs, minimum
// and maximum element counts) and returns a [Record]. A [Runner] expands the
// configured argument template with the record and starts the runner with
// the terminal attached; measuring and reporting are the runner's job.
package bench
