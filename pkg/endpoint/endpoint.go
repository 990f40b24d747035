// Package endpoint provides the credentials gsutil runs with.
package endpoint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leoferlopes/google-cloud-tfs/pkg/log"
	"github.com/leoferlopes/google-cloud-tfs/pkg/model"
	"github.com/leoferlopes/google-cloud-tfs/pkg/system"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Endpoint bundles the credential lifecycle of a service endpoint with the
// arguments that point a tool at those credentials.
type Endpoint interface {
	InitCredentials() error
	ClearCredentials() error
	CredentialParam() string
	ProjectParam() string
}

// Using acquires the endpoint credentials, runs fn and releases them.
// ClearCredentials runs exactly once on every path, including a failed
// InitCredentials and a panic in fn. The init error is returned and fn is
// skipped; a clear error is only logged.
func Using(ep Endpoint, logger log.Logger, fn func()) error {
	defer func() {
		if err := ep.ClearCredentials(); err != nil {
			logger.Error("Failed to clear credentials", "error", err)
		}
	}()

	if err := ep.InitCredentials(); err != nil {
		return err
	}
	fn()
	return nil
}

// ServiceAccountEndpoint hands a service account JSON key to the tool
// through a temporary key file.
type ServiceAccountEndpoint struct {
	certificate string
	key         *model.ServiceAccountKey
	keyFile     string
}

// NewServiceAccountEndpoint validates the key carried by auth. The key file
// is placed in dir, or the OS temp dir when dir is empty.
func NewServiceAccountEndpoint(auth *model.EndpointAuthorization, dir string) (*ServiceAccountEndpoint, error) {
	certificate := auth.Certificate()
	key, err := model.ParseServiceAccountKey(certificate)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint authorization: %w", err)
	}
	if dir == "" {
		dir = os.TempDir()
	}
	return &ServiceAccountEndpoint{
		certificate: certificate,
		key:         key,
		keyFile:     filepath.Join(dir, fmt.Sprintf("gsutil-task-%s.json", uuid.New().String())),
	}, nil
}

func (e *ServiceAccountEndpoint) InitCredentials() error {
	if err := system.AppFs.MkdirAll(filepath.Dir(e.keyFile), 0o700); err != nil {
		return fmt.Errorf("creating key directory: %w", err)
	}
	if err := afero.WriteFile(system.AppFs, e.keyFile, []byte(e.certificate), 0o600); err != nil {
		return fmt.Errorf("writing key file %s: %w", e.keyFile, err)
	}
	return nil
}

// ClearCredentials removes the key file. A file that is already gone is fine.
func (e *ServiceAccountEndpoint) ClearCredentials() error {
	err := system.AppFs.Remove(e.keyFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing key file %s: %w", e.keyFile, err)
	}
	return nil
}

func (e *ServiceAccountEndpoint) CredentialParam() string {
	return "--credential-file-override=" + e.keyFile
}

func (e *ServiceAccountEndpoint) ProjectParam() string {
	return "--project=" + e.key.ProjectID
}

// KeyFile is the path the key is written to while credentials are held.
func (e *ServiceAccountEndpoint) KeyFile() string {
	return e.keyFile
}

// ProjectID is the project named by the service account key.
func (e *ServiceAccountEndpoint) ProjectID() string {
	return e.key.ProjectID
}
