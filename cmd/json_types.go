package cmd

import (
	"github.com/leoferlopes/google-cloud-tfs/pkg/gsutil"
	"github.com/leoferlopes/google-cloud-tfs/pkg/model"
)

// invocationForJSON is the machine-readable form of a dry run.
type invocationForJSON struct {
	Description string            `json:"description"`
	Details     []string          `json:"details"`
	Invocation  gsutil.Invocation `json:"invocation"`
}

// resolvedInputs is what the inputs command prints. The certificate itself
// is never part of it.
type resolvedInputs struct {
	model.TaskInputs `yaml:",inline"`
	KeyDir           string `json:"keyDir" yaml:"keyDir"`
	ProjectID        string `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	AuthScheme       string `json:"authScheme,omitempty" yaml:"authScheme,omitempty"`
}
