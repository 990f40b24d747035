package gsutil

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Invocation describes what Run would execute.
type Invocation struct {
	Command             string   `json:"command"`
	Normalized          string   `json:"normalized"`
	CommandLine         string   `json:"commandLine,omitempty"`
	Args                []string `json:"args,omitempty"`
	IncludeProjectParam bool     `json:"includeProjectParam"`
	IgnoreReturnCode    bool     `json:"ignoreReturnCode"`
	OutputVariable      string   `json:"outputVariable,omitempty"`
}

// Plan builds the invocation on opts.Runner without executing it and
// without touching credentials. Args and CommandLine are filled in when the
// runner exposes them.
func Plan(opts RunOptions) Invocation {
	inv := Invocation{
		Command:             opts.Command,
		Normalized:          NormalizeCommand(opts.Command, ToolName),
		IncludeProjectParam: opts.IncludeProjectParam,
		IgnoreReturnCode:    opts.IgnoreReturnCode,
		OutputVariable:      opts.OutputVariable,
	}
	built := BuildInvocation(opts)
	if l, ok := built.(interface{ Args() []string }); ok {
		inv.Args = l.Args()
	}
	if s, ok := built.(fmt.Stringer); ok {
		inv.CommandLine = s.String()
	}
	return inv
}

// Description returns a human-readable string of what the run does.
func (i Invocation) Description() string {
	return fmt.Sprintf("Run %s %s", ToolName, i.Normalized)
}

// ExecutionDetails returns the low-level steps of the run. When the command
// was rewritten the change is shown as a diff.
func (i Invocation) ExecutionDetails() []string {
	details := []string{}
	if i.CommandLine != "" {
		details = append(details, fmt.Sprintf("run: %s", i.CommandLine))
	}
	if i.IncludeProjectParam {
		details = append(details, "pass project from endpoint")
	}
	if i.IgnoreReturnCode {
		details = append(details, "treat non-zero return code as success")
	}
	if i.OutputVariable != "" {
		details = append(details, fmt.Sprintf("set variable %s to stdout", i.OutputVariable))
	}

	if original := strings.TrimSpace(i.Command); original != i.Normalized {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(original, i.Normalized, false)
		details = append(details,
			"--- command normalized ---",
			dmp.DiffPrettyText(diffs),
			"--- end normalized ---",
		)
	}
	return details
}
