package endpoint

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leoferlopes/google-cloud-tfs/pkg/model"
	"github.com/leoferlopes/google-cloud-tfs/pkg/system"
	"github.com/leoferlopes/google-cloud-tfs/pkg/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAuth() *model.EndpointAuthorization {
	return &model.EndpointAuthorization{
		Parameters: map[string]string{"certificate": test.SampleServiceAccountKey},
		Scheme:     "",
	}
}

func TestUsing_RunsFnBetweenInitAndClear(t *testing.T) {
	ep := test.NewFakeEndpoint()
	logger := test.NewMockLogger(slog.LevelDebug)

	err := Using(ep, logger, func() {
		ep.Calls = append(ep.Calls, "fn")
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"init", "fn", "clear"}, ep.Calls)
}

func TestUsing_InitFailureStillClears(t *testing.T) {
	ep := test.NewFakeEndpoint()
	ep.InitErr = errors.New("malformed credentials")
	logger := test.NewMockLogger(slog.LevelDebug)
	called := false

	err := Using(ep, logger, func() { called = true })

	assert.EqualError(t, err, "malformed credentials")
	assert.False(t, called)
	assert.Equal(t, 1, ep.InitCount)
	assert.Equal(t, 1, ep.ClearCount)
}

func TestUsing_PanicStillClears(t *testing.T) {
	ep := test.NewFakeEndpoint()
	logger := test.NewMockLogger(slog.LevelDebug)

	assert.PanicsWithValue(t, "runtime failure", func() {
		_ = Using(ep, logger, func() { panic("runtime failure") })
	})
	assert.Equal(t, 1, ep.InitCount)
	assert.Equal(t, 1, ep.ClearCount)
}

func TestUsing_ClearFailureIsLogged(t *testing.T) {
	ep := test.NewFakeEndpoint()
	ep.ClearErr = errors.New("busy")
	logger := test.NewMockLogger(slog.LevelDebug)

	err := Using(ep, logger, func() {})

	require.NoError(t, err)
	test.AssertLogContains(t, logger, "Failed to clear credentials")
	test.AssertLogContains(t, logger, "error=busy")
}

func TestNewServiceAccountEndpoint(t *testing.T) {
	ep, err := NewServiceAccountEndpoint(sampleAuth(), "/agent/tmp")
	require.NoError(t, err)

	assert.Equal(t, "projectId", ep.ProjectID())
	assert.Equal(t, "/agent/tmp", filepath.Dir(ep.KeyFile()))
	assert.True(t, strings.HasPrefix(filepath.Base(ep.KeyFile()), "gsutil-task-"))
	assert.Equal(t, "--credential-file-override="+ep.KeyFile(), ep.CredentialParam())
	assert.Equal(t, "--project=projectId", ep.ProjectParam())
}

func TestNewServiceAccountEndpoint_UniqueKeyFiles(t *testing.T) {
	a, err := NewServiceAccountEndpoint(sampleAuth(), "/agent/tmp")
	require.NoError(t, err)
	b, err := NewServiceAccountEndpoint(sampleAuth(), "/agent/tmp")
	require.NoError(t, err)

	assert.NotEqual(t, a.KeyFile(), b.KeyFile())
}

func TestNewServiceAccountEndpoint_Malformed(t *testing.T) {
	_, err := NewServiceAccountEndpoint(&model.EndpointAuthorization{
		Parameters: map[string]string{"certificate": "not json"},
	}, "")
	assert.ErrorContains(t, err, "invalid endpoint authorization")

	_, err = NewServiceAccountEndpoint(&model.EndpointAuthorization{}, "")
	assert.ErrorContains(t, err, "service account key is empty")
}

func TestServiceAccountEndpoint_KeyFileLifecycle(t *testing.T) {
	system.AppFs = test.SetupMockFilesystem(t)
	ep, err := NewServiceAccountEndpoint(sampleAuth(), "/agent/tmp")
	require.NoError(t, err)

	require.NoError(t, ep.InitCredentials())
	test.AssertFileExists(t, system.AppFs, ep.KeyFile(), test.SampleServiceAccountKey)
	info, err := system.AppFs.Stat(ep.KeyFile())
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())

	require.NoError(t, ep.ClearCredentials())
	test.AssertFileNotExists(t, system.AppFs, ep.KeyFile())

	// Clearing twice is harmless.
	require.NoError(t, ep.ClearCredentials())
}

func TestServiceAccountEndpoint_UsingRemovesKeyFile(t *testing.T) {
	system.AppFs = test.SetupMockFilesystem(t)
	ep, err := NewServiceAccountEndpoint(sampleAuth(), "/agent/tmp")
	require.NoError(t, err)
	logger := test.NewMockLogger(slog.LevelDebug)

	err = Using(ep, logger, func() {
		test.AssertFileExists(t, system.AppFs, ep.KeyFile(), "")
	})

	require.NoError(t, err)
	test.AssertFileNotExists(t, system.AppFs, ep.KeyFile())
}
