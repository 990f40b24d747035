package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TaskResult is the terminal status reported to the pipeline host.
type TaskResult string

const (
	Succeeded TaskResult = "Succeeded"
	Failed    TaskResult = "Failed"
)

// Task input names as the host publishes them.
const (
	InputCommand             = "command"
	InputServiceEndpoint     = "serviceEndpoint"
	InputKeyFile             = "keyFile"
	InputIncludeProjectParam = "includeProjectParam"
	InputIgnoreReturnCode    = "ignoreReturnCode"
	InputOutputVariable      = "outputVariable"
)

// TaskInputs are the resolved inputs of one task run.
type TaskInputs struct {
	Command             string `yaml:"command" json:"command"`
	ServiceEndpoint     string `yaml:"serviceEndpoint,omitempty" json:"serviceEndpoint,omitempty"`
	KeyFile             string `yaml:"keyFile,omitempty" json:"keyFile,omitempty"`
	IncludeProjectParam bool   `yaml:"includeProjectParam" json:"includeProjectParam"`
	IgnoreReturnCode    bool   `yaml:"ignoreReturnCode" json:"ignoreReturnCode"`
	OutputVariable      string `yaml:"outputVariable,omitempty" json:"outputVariable,omitempty"`
}

func (in *TaskInputs) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(in.Command) == "" {
		errs = append(errs, ValidationError{Field: InputCommand, Message: "command cannot be empty"})
	}

	hasEndpoint := strings.TrimSpace(in.ServiceEndpoint) != ""
	hasKeyFile := strings.TrimSpace(in.KeyFile) != ""
	switch {
	case !hasEndpoint && !hasKeyFile:
		errs = append(errs, ValidationError{Field: InputServiceEndpoint, Message: "either serviceEndpoint or keyFile is required"})
	case hasEndpoint && hasKeyFile:
		errs = append(errs, ValidationError{Field: InputKeyFile, Message: "serviceEndpoint and keyFile cannot both be set"})
	}

	if in.OutputVariable != "" && !isValidVariableName(in.OutputVariable) {
		errs = append(errs, ValidationError{Field: InputOutputVariable, Message: "variable name cannot contain whitespace, ';' or ']'"})
	}

	return errs
}

func isValidVariableName(name string) bool {
	for _, r := range name {
		if r <= ' ' || r == 127 || r == ';' || r == ']' {
			return false
		}
	}
	return true
}

// EndpointAuthorization is the authorization block the host exposes for a
// service endpoint. The service account JSON key is in the "certificate"
// parameter.
type EndpointAuthorization struct {
	Parameters map[string]string `json:"parameters"`
	Scheme     string            `json:"scheme"`
}

const CertificateParameter = "certificate"

// Certificate returns the JSON key carried by the authorization.
func (a *EndpointAuthorization) Certificate() string {
	if a == nil || a.Parameters == nil {
		return ""
	}
	if c, ok := a.Parameters[CertificateParameter]; ok {
		return c
	}
	// Hosts are inconsistent about parameter name case.
	for k, v := range a.Parameters {
		if strings.EqualFold(k, CertificateParameter) {
			return v
		}
	}
	return ""
}

// ServiceAccountKey holds the fields of a service account JSON key the task needs.
type ServiceAccountKey struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
}

// ParseServiceAccountKey decodes a JSON key and checks it names a project.
func ParseServiceAccountKey(data string) (*ServiceAccountKey, error) {
	if strings.TrimSpace(data) == "" {
		return nil, fmt.Errorf("service account key is empty")
	}
	var key ServiceAccountKey
	if err := json.Unmarshal([]byte(data), &key); err != nil {
		return nil, fmt.Errorf("malformed service account key: %w", err)
	}
	if key.ProjectID == "" {
		return nil, fmt.Errorf("service account key has no project_id")
	}
	return &key, nil
}
