// Package runner defines the process-line runner used to invoke gsutil.
// This package exists to break import cycles between the executor, the
// production adapters in pkg/system and the test doubles.
package runner

// ToolRunner builds and runs one external process line.
// Line, Arg and ArgIf return the runner so calls can be chained.
type ToolRunner interface {
	// Line appends the arguments contained in a command line string.
	Line(text string) ToolRunner
	// Arg appends a single argument verbatim.
	Arg(text string) ToolRunner
	// ArgIf appends text as a single argument when condition is true.
	ArgIf(condition bool, text string) ToolRunner
	// ExecSync runs the process to completion and returns what it captured.
	ExecSync() ExecResult
}

// ExecResult holds the outcome of ExecSync.
// Error is only set when the process could not be launched; a process that
// ran and exited non-zero reports that through Code.
type ExecResult struct {
	Stdout string
	Stderr string
	Error  error
	Code   int
}
