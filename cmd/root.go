package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leoferlopes/google-cloud-tfs/pkg/config"
	"github.com/leoferlopes/google-cloud-tfs/pkg/log"
	"github.com/leoferlopes/google-cloud-tfs/pkg/runner"
	"github.com/leoferlopes/google-cloud-tfs/pkg/system"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type contextKey string

const loggerKey contextKey = "logger"

var (
	inputsFile string
	logLevel   = levelValue{level: slog.LevelInfo}
	logFormat  string
	jsonOutput bool

	// Task inputs given on the command line win over the inputs file and the environment.
	flagCommand             string
	flagServiceEndpoint     string
	flagKeyFile             string
	flagIncludeProjectParam bool
	flagIgnoreReturnCode    bool
	flagOutputVariable      string

	envLookup     = config.OSLookup
	newToolRunner = func(toolPath string, echo io.Writer) runner.ToolRunner {
		return system.NewLiveToolRunner(toolPath, echo)
	}

	rootCmd = &cobra.Command{
		Use:   "gsutil-task",
		Short: "gsutil-task runs gsutil as a build pipeline task",
		Long: `A build pipeline task that runs a gsutil command with the credentials of a
Google Cloud service endpoint and reports the result back to the pipeline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := log.ParseFormat(logFormat)
			if err != nil {
				return err
			}
			logger := log.NewSlogLoggerWithFormat(logLevel.level, format, cmd.ErrOrStderr()).With("cmd", cmd.Name())
			ctx := context.WithValue(cmd.Context(), loggerKey, log.Logger(logger))
			cmd.SetContext(ctx)
			return nil
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loggerFrom(cmd *cobra.Command) log.Logger {
	if logger, ok := cmd.Context().Value(loggerKey).(log.Logger); ok {
		return logger
	}
	return log.Discard()
}

// levelValue is a pflag.Value holding a slog level.
type levelValue struct {
	level slog.Level
}

var _ pflag.Value = (*levelValue)(nil)

func (v *levelValue) String() string {
	return strings.ToLower(v.level.String())
}

func (v *levelValue) Set(s string) error {
	level, err := parseLogLevel(s)
	if err != nil {
		return err
	}
	v.level = level
	return nil
}

func (v *levelValue) Type() string {
	return "level"
}

func parseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", levelStr)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&inputsFile, "inputs", "", "YAML file with task inputs")
	pf.Var(&logLevel, "log-level", "Log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	pf.StringVar(&flagCommand, "command", "", "gsutil command to run, with or without the leading 'gsutil'")
	pf.StringVar(&flagServiceEndpoint, "service-endpoint", "", "ID of the service endpoint holding the service account key")
	pf.StringVar(&flagKeyFile, "key-file", "", "Path to a service account JSON key, instead of a service endpoint")
	pf.BoolVar(&flagIncludeProjectParam, "include-project-param", false, "Pass the endpoint project to gsutil")
	pf.BoolVar(&flagIgnoreReturnCode, "ignore-return-code", false, "Succeed even when gsutil returns a non-zero code")
	pf.StringVar(&flagOutputVariable, "output-variable", "", "Pipeline variable that receives gsutil stdout")
}
