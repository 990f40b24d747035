package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/leoferlopes/google-cloud-tfs/pkg/model"
	"github.com/leoferlopes/google-cloud-tfs/pkg/system"

	"github.com/spf13/afero"
)

// KeyFileScheme is the scheme reported for keys read from a local file.
const KeyFileScheme = "ServiceAccountKey"

// LoadAuthorization returns the credentials selected by the inputs: the
// service endpoint when one is named, the key file otherwise.
func LoadAuthorization(inputs *model.TaskInputs, lookup LookupFunc) (*model.EndpointAuthorization, error) {
	if inputs.ServiceEndpoint != "" {
		return LoadEndpointAuthorization(inputs.ServiceEndpoint, lookup)
	}
	if inputs.KeyFile != "" {
		return LoadKeyFileAuthorization(inputs.KeyFile)
	}
	return nil, fmt.Errorf("no credentials configured: set %s or %s", model.InputServiceEndpoint, model.InputKeyFile)
}

// LoadEndpointAuthorization reads the authorization the host published for
// endpoint id. The per-parameter variables are preferred over the JSON blob
// in ENDPOINT_AUTH_<id>.
func LoadEndpointAuthorization(id string, lookup LookupFunc) (*model.EndpointAuthorization, error) {
	certKey := HostEnvName(fmt.Sprintf("ENDPOINT_AUTH_PARAMETER_%s_%s", id, model.CertificateParameter))
	if cert, ok := lookup(certKey); ok && cert != "" {
		scheme, _ := lookup(HostEnvName("ENDPOINT_AUTH_SCHEME_" + id))
		return &model.EndpointAuthorization{
			Parameters: map[string]string{model.CertificateParameter: cert},
			Scheme:     scheme,
		}, nil
	}

	authKey := HostEnvName("ENDPOINT_AUTH_" + id)
	raw, ok := lookup(authKey)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("endpoint %s has no authorization: %s is not set", id, authKey)
	}
	var auth model.EndpointAuthorization
	if err := json.Unmarshal([]byte(raw), &auth); err != nil {
		return nil, fmt.Errorf("error parsing authorization for endpoint %s: %w", id, err)
	}
	return &auth, nil
}

// LoadKeyFileAuthorization wraps a service account key file as an
// endpoint authorization.
func LoadKeyFileAuthorization(path string) (*model.EndpointAuthorization, error) {
	data, err := afero.ReadFile(system.AppFs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading key file %s: %w", path, err)
	}
	return &model.EndpointAuthorization{
		Parameters: map[string]string{model.CertificateParameter: string(data)},
		Scheme:     KeyFileScheme,
	}, nil
}
