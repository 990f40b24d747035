package test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// SampleServiceAccountKey is a minimal service account JSON key.
const SampleServiceAccountKey = `{"type": "service_account", "project_id": "projectId", "client_email": "builder@projectId.iam.gserviceaccount.com"}`

// SetupMockFilesystem creates an in-memory filesystem for testing.
// The caller is responsible for setting system.AppFs if needed.
func SetupMockFilesystem(t *testing.T) afero.Fs {
	return afero.NewMemMapFs()
}

// CreateTestFile creates a file with content in the test filesystem.
func CreateTestFile(t *testing.T, fs afero.Fs, path, content string) {
	err := fs.MkdirAll(filepath.Dir(path), 0755)
	require.NoError(t, err)
	err = afero.WriteFile(fs, path, []byte(content), 0644)
	require.NoError(t, err)
}

// AssertFileExists checks that a file exists and has expected content.
func AssertFileExists(t *testing.T, fs afero.Fs, path, expectedContent string) {
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.True(t, exists, "File %s should exist", path)

	if expectedContent != "" {
		content, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		require.Equal(t, expectedContent, string(content))
	}
}

// AssertFileNotExists checks that a file does not exist.
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.False(t, exists, "File %s should not exist", path)
}

// AssertLogContains checks that the logger captured a message containing the substring.
func AssertLogContains(t *testing.T, logger *MockLogger, substring string) {
	require.True(t, logger.HasMessage(substring), "Log should contain: %s", substring)
}

// EnvLookup returns a lookup function over a fixed environment.
func EnvLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}
