// Package gsutil runs one gsutil invocation as a pipeline task and reports
// its outcome to the host.
package gsutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leoferlopes/google-cloud-tfs/pkg/endpoint"
	"github.com/leoferlopes/google-cloud-tfs/pkg/log"
	"github.com/leoferlopes/google-cloud-tfs/pkg/model"
	"github.com/leoferlopes/google-cloud-tfs/pkg/pipeline"
	"github.com/leoferlopes/google-cloud-tfs/pkg/runner"
)

// ToolName is the executable the task wraps.
const ToolName = "gsutil"

// RunOptions is everything one task run needs. It is built by the caller
// for a single Run and not reused.
type RunOptions struct {
	Command             string
	Runner              runner.ToolRunner
	Endpoint            endpoint.Endpoint
	IncludeProjectParam bool
	IgnoreReturnCode    bool
	// OutputVariable receives stdout when set.
	OutputVariable string
}

// NormalizeCommand trims command and drops one toolName word, so a pasted
// "gsutil ls" does not run "gsutil gsutil ls". A leading word is dropped
// when present, otherwise a trailing one. The match is case-insensitive and
// must be a whole word. Interior occurrences are kept.
func NormalizeCommand(command, toolName string) string {
	command = strings.TrimSpace(command)
	first := strings.IndexFunc(command, unicode.IsSpace)
	if first < 0 {
		if strings.EqualFold(command, toolName) {
			return ""
		}
		return command
	}
	if strings.EqualFold(command[:first], toolName) {
		return strings.TrimSpace(command[first:])
	}

	last := strings.LastIndexFunc(command, unicode.IsSpace)
	_, size := utf8.DecodeRuneInString(command[last:])
	if strings.EqualFold(command[last+size:], toolName) {
		return strings.TrimSpace(command[:last])
	}
	return command
}

// BuildInvocation adds the command line and the endpoint arguments to the
// runner. ArgIf is always called so the project decision reaches the runner.
func BuildInvocation(opts RunOptions) runner.ToolRunner {
	return opts.Runner.
		Line(NormalizeCommand(opts.Command, ToolName)).
		Arg(opts.Endpoint.CredentialParam()).
		ArgIf(opts.IncludeProjectParam, opts.Endpoint.ProjectParam())
}

// Classify maps an execution result to the status and message reported to
// the host. A launch error wins over the exit code.
func Classify(res runner.ExecResult, ignoreReturnCode bool) (model.TaskResult, string) {
	codeMessage := fmt.Sprintf("%s returned code %d", ToolName, res.Code)
	switch {
	case res.Error != nil:
		return model.Failed, res.Error.Error()
	case res.Code != 0 && ignoreReturnCode:
		return model.Succeeded, codeMessage
	case res.Code != 0:
		if res.Stderr != "" {
			return model.Failed, res.Stderr
		}
		return model.Failed, codeMessage
	default:
		return model.Succeeded, codeMessage
	}
}

// Run executes gsutil with the endpoint credentials held and reports the
// outcome to host exactly once. Credentials are released before the result
// is reported. Nothing is returned or re-raised; failures, including a panic
// while running the tool, become a Failed result.
func Run(opts RunOptions, host pipeline.Host, logger log.Logger) {
	result, message := runWithCredentials(opts, host, logger)
	host.SetResult(result, message)
}

func runWithCredentials(opts RunOptions, host pipeline.Host, logger log.Logger) (result model.TaskResult, message string) {
	defer func() {
		// Runs after endpoint.Using has released the credentials.
		if r := recover(); r != nil {
			logger.Error("gsutil run aborted", "panic", r)
			result, message = model.Failed, fmt.Sprintf("%s run aborted: %v", ToolName, r)
		}
	}()

	err := endpoint.Using(opts.Endpoint, logger, func() {
		logger.Info("Running gsutil", "command", NormalizeCommand(opts.Command, ToolName),
			"includeProjectParam", opts.IncludeProjectParam)

		res := BuildInvocation(opts).ExecSync()
		result, message = Classify(res, opts.IgnoreReturnCode)
		logger.Debug("gsutil finished", "code", res.Code, "launchError", res.Error != nil, "result", result)

		if opts.OutputVariable != "" && res.Error == nil {
			host.SetVariable(opts.OutputVariable, res.Stdout)
			logger.Debug("Published output variable", "variable", opts.OutputVariable)
		}
	})
	if err != nil {
		logger.Error("Failed to initialize credentials", "error", err)
		return model.Failed, err.Error()
	}
	return result, message
}
