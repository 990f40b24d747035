// Package pipeline reports task outcomes to the hosting pipeline engine.
package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/leoferlopes/google-cloud-tfs/pkg/model"
)

// ResultSink receives the terminal status of a task.
type ResultSink interface {
	SetResult(result model.TaskResult, message string)
}

// VariableSink publishes named values for later pipeline steps.
type VariableSink interface {
	SetVariable(name, value string)
}

// Host is everything the task reports to.
type Host interface {
	ResultSink
	VariableSink
}

// LoggingCommandHost talks to an Azure Pipelines agent by writing
// ##vso[...] logging commands to the task's stdout.
type LoggingCommandHost struct {
	Out io.Writer
}

func NewLoggingCommandHost(out io.Writer) *LoggingCommandHost {
	return &LoggingCommandHost{Out: out}
}

func (h *LoggingCommandHost) SetVariable(name, value string) {
	h.command("task.setvariable", []property{{"variable", name}}, value)
}

// SetResult completes the task. A failure is also raised as an error issue
// so it shows up in the run summary.
func (h *LoggingCommandHost) SetResult(result model.TaskResult, message string) {
	if result == model.Failed {
		h.command("task.issue", []property{{"type", "error"}}, message)
	}
	h.command("task.complete", []property{{"result", string(result)}}, message)
}

type property struct {
	key, value string
}

func (h *LoggingCommandHost) command(name string, props []property, data string) {
	var sb strings.Builder
	sb.WriteString("##vso[")
	sb.WriteString(name)
	for i, p := range props {
		if i == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.key)
		sb.WriteByte('=')
		sb.WriteString(escapeProperty(p.value))
		sb.WriteByte(';')
	}
	sb.WriteByte(']')
	sb.WriteString(escapeData(data))
	fmt.Fprintln(h.Out, sb.String())
}

func escapeData(s string) string {
	return strings.NewReplacer(
		"%", "%AZP25",
		"\r", "%0D",
		"\n", "%0A",
	).Replace(s)
}

func escapeProperty(s string) string {
	return strings.NewReplacer(
		"%", "%AZP25",
		"\r", "%0D",
		"\n", "%0A",
		"]", "%5D",
		";", "%3B",
	).Replace(s)
}
