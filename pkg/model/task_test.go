package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskInputs_Validate_Valid(t *testing.T) {
	in := &TaskInputs{Command: "ls gs://bucket", ServiceEndpoint: "ep"}
	assert.Empty(t, in.Validate())

	in = &TaskInputs{Command: "ls", KeyFile: "/key.json", OutputVariable: "listing.out_1"}
	assert.Empty(t, in.Validate())
}

func TestTaskInputs_Validate_EmptyCommand(t *testing.T) {
	in := &TaskInputs{Command: "   ", ServiceEndpoint: "ep"}

	errs := in.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, InputCommand, errs[0].Field)
}

func TestTaskInputs_Validate_CredentialSource(t *testing.T) {
	errs := (&TaskInputs{Command: "ls"}).Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, InputServiceEndpoint, errs[0].Field)

	errs = (&TaskInputs{Command: "ls", ServiceEndpoint: "ep", KeyFile: "/k.json"}).Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, InputKeyFile, errs[0].Field)
}

func TestTaskInputs_Validate_OutputVariable(t *testing.T) {
	for _, name := range []string{"has space", "semi;colon", "bracket]", "tab\tname"} {
		errs := (&TaskInputs{Command: "ls", ServiceEndpoint: "ep", OutputVariable: name}).Validate()
		require.Len(t, errs, 1, name)
		assert.Equal(t, InputOutputVariable, errs[0].Field)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "command", Message: "command cannot be empty"},
		{Field: "serviceEndpoint", Message: "either serviceEndpoint or keyFile is required"},
	}

	msg := errs.Error()

	assert.Contains(t, msg, "task input validation failed")
	assert.Contains(t, msg, "  - command: command cannot be empty\n")
	assert.Contains(t, msg, "  - serviceEndpoint: either serviceEndpoint or keyFile is required\n")
	assert.Equal(t, "", ValidationErrors{}.Error())
}

func TestEndpointAuthorization_Certificate(t *testing.T) {
	auth := &EndpointAuthorization{Parameters: map[string]string{"certificate": `{"project_id": "p"}`}}
	assert.Equal(t, `{"project_id": "p"}`, auth.Certificate())

	auth = &EndpointAuthorization{Parameters: map[string]string{"Certificate": "c"}}
	assert.Equal(t, "c", auth.Certificate())

	var missing *EndpointAuthorization
	assert.Equal(t, "", missing.Certificate())
}

func TestParseServiceAccountKey(t *testing.T) {
	key, err := ParseServiceAccountKey(`{"type": "service_account", "project_id": "projectId", "client_email": "sa@projectId.iam.gserviceaccount.com"}`)
	require.NoError(t, err)
	assert.Equal(t, "projectId", key.ProjectID)
	assert.Equal(t, "service_account", key.Type)

	_, err = ParseServiceAccountKey("")
	assert.ErrorContains(t, err, "empty")

	_, err = ParseServiceAccountKey("{not json")
	assert.ErrorContains(t, err, "malformed service account key")

	_, err = ParseServiceAccountKey(`{"type": "service_account"}`)
	assert.ErrorContains(t, err, "no project_id")
}
