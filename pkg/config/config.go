package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leoferlopes/google-cloud-tfs/pkg/gsutil"
	"github.com/leoferlopes/google-cloud-tfs/pkg/log"
	"github.com/leoferlopes/google-cloud-tfs/pkg/model"
	"github.com/leoferlopes/google-cloud-tfs/pkg/system"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LookupFunc reads one variable of the host environment.
type LookupFunc func(key string) (string, bool)

// OSLookup reads the process environment.
var OSLookup LookupFunc = os.LookupEnv

// LoadInputs resolves the task inputs. Values from the YAML inputs file
// (optional, empty filename skips it) are overridden by INPUT_* variables
// set by the host.
func LoadInputs(filename string, lookup LookupFunc, logger log.Logger) (*model.TaskInputs, error) {
	inputs := &model.TaskInputs{}
	if filename != "" {
		fileInputs, err := loadInputsFile(filename)
		if err != nil {
			return nil, err
		}
		inputs = fileInputs
	}

	applyEnvInputs(inputs, lookup, logger)
	return inputs, nil
}

func loadInputsFile(filename string) (*model.TaskInputs, error) {
	f, err := afero.ReadFile(system.AppFs, filename)
	if err != nil {
		return nil, err
	}

	var inputs model.TaskInputs
	dec := yaml.NewDecoder(bytes.NewReader(f))
	dec.KnownFields(true)
	if err := dec.Decode(&inputs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing inputs file %s: %w", filename, err)
	}
	return &inputs, nil
}

// InputEnvName is the variable the host uses to pass the named input.
func InputEnvName(name string) string {
	return HostEnvName("INPUT_" + name)
}

// HostEnvName maps a host variable name to the environment variable the
// agent publishes it as: upper case, with dots and spaces as underscores.
func HostEnvName(name string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", " ", "_").Replace(name))
}

func applyEnvInputs(inputs *model.TaskInputs, lookup LookupFunc, logger log.Logger) {
	strInputs := []struct {
		name  string
		field *string
	}{
		{model.InputCommand, &inputs.Command},
		{model.InputServiceEndpoint, &inputs.ServiceEndpoint},
		{model.InputKeyFile, &inputs.KeyFile},
		{model.InputOutputVariable, &inputs.OutputVariable},
	}
	for _, in := range strInputs {
		v, ok := lookup(InputEnvName(in.name))
		if !ok || v == "" {
			continue
		}
		if *in.field != "" && *in.field != v {
			logger.Warn("Input overridden", "input", in.name, "source", "environment")
		}
		*in.field = v
	}

	boolInputs := []struct {
		name  string
		field *bool
	}{
		{model.InputIncludeProjectParam, &inputs.IncludeProjectParam},
		{model.InputIgnoreReturnCode, &inputs.IgnoreReturnCode},
	}
	for _, in := range boolInputs {
		v, ok := lookup(InputEnvName(in.name))
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		*in.field = parseBoolInput(v)
		logger.Debug("Input read from environment", "input", in.name, "value", *in.field)
	}
}

// parseBoolInput follows the host convention: only "true", in any case, is true.
func parseBoolInput(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// ValidateInputs checks inputs after every source has been applied.
func ValidateInputs(inputs *model.TaskInputs) error {
	errs := inputs.Validate()
	if strings.TrimSpace(inputs.Command) != "" && gsutil.NormalizeCommand(inputs.Command, gsutil.ToolName) == "" {
		errs = append(errs, model.ValidationError{Field: model.InputCommand, Message: "command must contain more than the gsutil tool name"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// KeyDir is where temporary key files go: the agent temp directory when the
// host sets one, the OS temp dir otherwise.
func KeyDir(lookup LookupFunc) string {
	if dir, ok := lookup("AGENT_TEMPDIRECTORY"); ok && dir != "" {
		return dir
	}
	return os.TempDir()
}
