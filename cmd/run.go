package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/leoferlopes/google-cloud-tfs/pkg/config"
	"github.com/leoferlopes/google-cloud-tfs/pkg/endpoint"
	"github.com/leoferlopes/google-cloud-tfs/pkg/gsutil"
	"github.com/leoferlopes/google-cloud-tfs/pkg/log"
	"github.com/leoferlopes/google-cloud-tfs/pkg/model"
	"github.com/leoferlopes/google-cloud-tfs/pkg/pipeline"

	"github.com/spf13/cobra"
)

var (
	dryRun     bool
	gsutilPath string
	keyDir     string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs gsutil with the task inputs and reports the result",
	Long: `The run command resolves the task inputs, writes the service account key
of the selected endpoint to a temporary file, runs gsutil with it and reports
the task result to the pipeline with logging commands on stdout.

The key file is removed once gsutil has finished, whatever the outcome.
A gsutil failure is reported as a failed task, not as a non-zero exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFrom(cmd)
		host := pipeline.NewLoggingCommandHost(cmd.OutOrStdout())

		opts, err := buildRunOptions(cmd, logger)
		if err != nil {
			if !dryRun {
				host.SetResult(model.Failed, err.Error())
			}
			return err
		}

		if dryRun {
			return printPlan(cmd, gsutil.Plan(opts))
		}

		gsutil.Run(opts, host, logger)
		return nil
	},
}

func buildRunOptions(cmd *cobra.Command, logger log.Logger) (gsutil.RunOptions, error) {
	inputs, err := resolveInputs(cmd, logger)
	if err != nil {
		return gsutil.RunOptions{}, err
	}
	if err := config.ValidateInputs(inputs); err != nil {
		return gsutil.RunOptions{}, err
	}

	auth, err := config.LoadAuthorization(inputs, envLookup)
	if err != nil {
		return gsutil.RunOptions{}, err
	}
	ep, err := endpoint.NewServiceAccountEndpoint(auth, resolveKeyDir())
	if err != nil {
		return gsutil.RunOptions{}, err
	}

	return gsutil.RunOptions{
		Command:             inputs.Command,
		Runner:              newToolRunner(gsutilPath, cmd.OutOrStdout()),
		Endpoint:            ep,
		IncludeProjectParam: inputs.IncludeProjectParam,
		IgnoreReturnCode:    inputs.IgnoreReturnCode,
		OutputVariable:      inputs.OutputVariable,
	}, nil
}

// resolveInputs layers the inputs file, the INPUT_* environment and the
// flags that were set explicitly.
func resolveInputs(cmd *cobra.Command, logger log.Logger) (*model.TaskInputs, error) {
	inputs, err := config.LoadInputs(inputsFile, envLookup, logger)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("command") {
		inputs.Command = flagCommand
	}
	if flags.Changed("service-endpoint") {
		inputs.ServiceEndpoint = flagServiceEndpoint
	}
	if flags.Changed("key-file") {
		inputs.KeyFile = flagKeyFile
	}
	if flags.Changed("include-project-param") {
		inputs.IncludeProjectParam = flagIncludeProjectParam
	}
	if flags.Changed("ignore-return-code") {
		inputs.IgnoreReturnCode = flagIgnoreReturnCode
	}
	if flags.Changed("output-variable") {
		inputs.OutputVariable = flagOutputVariable
	}
	return inputs, nil
}

func resolveKeyDir() string {
	if keyDir != "" {
		return keyDir
	}
	return config.KeyDir(envLookup)
}

func printPlan(cmd *cobra.Command, inv gsutil.Invocation) error {
	if jsonOutput {
		jsonBytes, err := json.MarshalIndent(invocationForJSON{
			Description: inv.Description(),
			Details:     inv.ExecutionDetails(),
			Invocation:  inv,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal invocation to JSON: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Dry run enabled. The following invocation would be performed:")
	fmt.Fprintf(cmd.OutOrStdout(), "=> %s\n", inv.Description())
	for _, detail := range inv.ExecutionDetails() {
		fmt.Fprintf(cmd.OutOrStdout(), "   - %s\n", detail)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the gsutil invocation without writing credentials or running it")
	runCmd.Flags().StringVar(&gsutilPath, "gsutil", gsutil.ToolName, "Path to the gsutil executable")
	runCmd.Flags().StringVar(&keyDir, "key-dir", "", "Directory for the temporary key file (default: agent temp directory)")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the invocation in JSON format (only valid with --dry-run)")
}
