package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/leoferlopes/google-cloud-tfs/pkg/config"
	"github.com/leoferlopes/google-cloud-tfs/pkg/model"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// inputsCmd represents the inputs command
var inputsCmd = &cobra.Command{
	Use:   "inputs",
	Short: "Prints the resolved task inputs",
	Long: `The inputs command resolves the task inputs the same way run does, from the
inputs file, the INPUT_* environment and the flags, and prints them in YAML format.

When the credentials can be loaded, the project of the service account and the
authorization scheme are shown too. The key itself is never printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFrom(cmd)

		inputs, err := resolveInputs(cmd, logger)
		if err != nil {
			return err
		}

		out := resolvedInputs{TaskInputs: *inputs, KeyDir: resolveKeyDir()}
		if auth, err := config.LoadAuthorization(inputs, envLookup); err != nil {
			logger.Warn("Credentials not available", "error", err)
		} else {
			out.AuthScheme = auth.Scheme
			if key, err := model.ParseServiceAccountKey(auth.Certificate()); err != nil {
				logger.Warn("Service account key is not usable", "error", err)
			} else {
				out.ProjectID = key.ProjectID
			}
		}

		if err := config.ValidateInputs(inputs); err != nil {
			logger.Warn("Inputs are not valid for a run", "error", err)
		}

		if jsonOutput {
			jsonBytes, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal inputs to JSON: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(jsonBytes))
			return nil
		}

		yamlBytes, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to marshal inputs to YAML: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(yamlBytes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inputsCmd)
	inputsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the inputs in JSON format")
	inputsCmd.Flags().StringVar(&keyDir, "key-dir", "", "Directory for the temporary key file (default: agent temp directory)")
}
