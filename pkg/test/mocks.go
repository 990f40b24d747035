package test

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/leoferlopes/google-cloud-tfs/pkg/log"
	"github.com/leoferlopes/google-cloud-tfs/pkg/model"
	"github.com/leoferlopes/google-cloud-tfs/pkg/runner"
)

// FakeToolRunner is a shared fake implementation of runner.ToolRunner for testing.
// It records every builder call and returns a canned ExecResult.
type FakeToolRunner struct {
	Lines     []string // Line arguments, in call order
	Args      []string // Arg arguments plus ArgIf arguments whose condition was true
	ArgIfs    []ArgIfCall
	ExecCount int
	Result    runner.ExecResult
	// Panic, when set, is raised from ExecSync.
	Panic any
}

// ArgIfCall records one ArgIf call.
type ArgIfCall struct {
	Condition bool
	Text      string
}

// NewFakeToolRunner creates a FakeToolRunner that exits 0 with the given output.
func NewFakeToolRunner(stdout, stderr string) *FakeToolRunner {
	return &FakeToolRunner{Result: runner.ExecResult{Stdout: stdout, Stderr: stderr}}
}

func (r *FakeToolRunner) Line(text string) runner.ToolRunner {
	r.Lines = append(r.Lines, text)
	return r
}

func (r *FakeToolRunner) Arg(text string) runner.ToolRunner {
	r.Args = append(r.Args, text)
	return r
}

func (r *FakeToolRunner) ArgIf(condition bool, text string) runner.ToolRunner {
	r.ArgIfs = append(r.ArgIfs, ArgIfCall{Condition: condition, Text: text})
	if condition {
		r.Args = append(r.Args, text)
	}
	return r
}

func (r *FakeToolRunner) ExecSync() runner.ExecResult {
	r.ExecCount++
	if r.Panic != nil {
		panic(r.Panic)
	}
	return r.Result
}

// FakeEndpoint is a shared fake implementation of endpoint.Endpoint.
// It counts lifecycle calls and can be told to fail them.
type FakeEndpoint struct {
	Credential string
	Project    string
	InitErr    error
	ClearErr   error
	InitCount  int
	ClearCount int
	// Calls records lifecycle calls in order ("init", "clear").
	Calls []string
}

// NewFakeEndpoint creates a FakeEndpoint with fixed argument fragments.
func NewFakeEndpoint() *FakeEndpoint {
	return &FakeEndpoint{
		Credential: "--credential-file-override=/tmp/key.json",
		Project:    "--project=projectId",
	}
}

func (e *FakeEndpoint) InitCredentials() error {
	e.InitCount++
	e.Calls = append(e.Calls, "init")
	return e.InitErr
}

func (e *FakeEndpoint) ClearCredentials() error {
	e.ClearCount++
	e.Calls = append(e.Calls, "clear")
	return e.ClearErr
}

func (e *FakeEndpoint) CredentialParam() string { return e.Credential }

func (e *FakeEndpoint) ProjectParam() string { return e.Project }

// ResultCall records one SetResult call.
type ResultCall struct {
	Result  model.TaskResult
	Message string
}

// RecordingHost is a shared pipeline.Host that records what the task reports.
type RecordingHost struct {
	Results   []ResultCall
	Variables map[string][]string // every value published per name
	// Calls records host calls in order ("setVariable", "setResult").
	Calls []string
}

// NewRecordingHost creates a RecordingHost with initialized maps.
func NewRecordingHost() *RecordingHost {
	return &RecordingHost{Variables: make(map[string][]string)}
}

func (h *RecordingHost) SetResult(result model.TaskResult, message string) {
	h.Calls = append(h.Calls, "setResult")
	h.Results = append(h.Results, ResultCall{Result: result, Message: message})
}

func (h *RecordingHost) SetVariable(name, value string) {
	h.Calls = append(h.Calls, "setVariable")
	h.Variables[name] = append(h.Variables[name], value)
}

// MockLogger is a shared mock implementation of Logger for testing.
// It captures logged messages for verification.
type MockLogger struct {
	Messages []string
	Level    slog.Level
}

// NewMockLogger creates a new MockLogger with the specified level.
func NewMockLogger(level slog.Level) *MockLogger {
	return &MockLogger{
		Messages: []string{},
		Level:    level,
	}
}

func (l *MockLogger) Debug(msg string, args ...any) {
	if l.Level <= slog.LevelDebug {
		l.captureMessage("DEBUG", msg, args...)
	}
}

func (l *MockLogger) Info(msg string, args ...any) {
	if l.Level <= slog.LevelInfo {
		l.captureMessage("INFO", msg, args...)
	}
}

func (l *MockLogger) Warn(msg string, args ...any) {
	if l.Level <= slog.LevelWarn {
		l.captureMessage("WARN", msg, args...)
	}
}

func (l *MockLogger) Error(msg string, args ...any) {
	if l.Level <= slog.LevelError {
		l.captureMessage("ERROR", msg, args...)
	}
}

func (l *MockLogger) captureMessage(level, msg string, args ...any) {
	buf := &bytes.Buffer{}
	buf.WriteString(level)
	buf.WriteString(": ")
	buf.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(buf, " %v=%v", args[i], args[i+1])
	}
	l.Messages = append(l.Messages, buf.String())
}

// HasMessage checks if any captured message contains the given substring.
func (l *MockLogger) HasMessage(substring string) bool {
	for _, msg := range l.Messages {
		if bytes.Contains([]byte(msg), []byte(substring)) {
			return true
		}
	}
	return false
}

// SlogLogger creates a real slog logger for testing (alternative to mock).
func SlogLogger(level slog.Level) log.Logger {
	buf := &bytes.Buffer{}
	return log.NewSlogLogger(level, buf)
}
