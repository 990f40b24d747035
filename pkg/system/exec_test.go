package system

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
}

func TestLiveToolRunner_LineSplitsQuotedWords(t *testing.T) {
	r := NewLiveToolRunner("gsutil", nil)

	r.Line(`cp "my file.txt" 'gs://bucket/dir with space/' gs://b/*.log`)

	require.NoError(t, r.Err())
	assert.Equal(t, []string{"cp", "my file.txt", "gs://bucket/dir with space/", "gs://b/*.log"}, r.Args())
}

func TestLiveToolRunner_LineKeepsParameterReferences(t *testing.T) {
	t.Setenv("BUCKET", "should-not-appear")
	r := NewLiveToolRunner("gsutil", nil)

	r.Line("ls gs://$BUCKET")

	require.NoError(t, r.Err())
	assert.Equal(t, []string{"ls", "gs://$BUCKET"}, r.Args())
}

func TestLiveToolRunner_LineKeepsTildesAndBraces(t *testing.T) {
	t.Setenv("HOME", "/home/builder")
	r := NewLiveToolRunner("gsutil", nil)

	r.Line("cp ~/build/out.zip gs://bucket/ a{b,c}")

	require.NoError(t, r.Err())
	assert.Equal(t, []string{"cp", "~/build/out.zip", "gs://bucket/", "a{b,c}"}, r.Args())
}

func TestLiveToolRunner_LineRemovesOnlyQuoting(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{`ls gs://b/a\ b`, []string{"ls", "gs://b/a b"}},
		{`ls "gs://$BUCKET/\$x \d"`, []string{"ls", `gs://$BUCKET/$x \d`}},
		{`ls ${BUCKET}/x $(date)`, []string{"ls", "${BUCKET}/x", "$(date)"}},
		{`setmeta -h 'Cache-Control:no-cache' ''`, []string{"setmeta", "-h", "Cache-Control:no-cache", ""}},
		{`cp $'a\tb' gs://b`, []string{"cp", "a\tb", "gs://b"}},
	}

	for _, tt := range tests {
		r := NewLiveToolRunner("gsutil", nil)
		r.Line(tt.line)
		require.NoError(t, r.Err(), tt.line)
		assert.Equal(t, tt.want, r.Args(), tt.line)
	}
}

func TestLiveToolRunner_ArgAndArgIf(t *testing.T) {
	r := NewLiveToolRunner("gsutil", nil)

	r.Line("ls").Arg("--flag=a b").ArgIf(false, "--skipped").ArgIf(true, "--kept")

	assert.Equal(t, []string{"ls", "--flag=a b", "--kept"}, r.Args())
	assert.Equal(t, "gsutil ls '--flag=a b' --kept", r.String())
}

func TestLiveToolRunner_ExecSyncCapturesOutputAndCode(t *testing.T) {
	skipWithoutShell(t)
	var echo bytes.Buffer
	r := NewLiveToolRunner("/bin/sh", &echo)

	res := r.Line(`-c 'echo out; echo err >&2; exit 3'`).ExecSync()

	require.NoError(t, res.Error)
	assert.Equal(t, 3, res.Code)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.Contains(t, echo.String(), "[command]/bin/sh -c")
	assert.Contains(t, echo.String(), "out\n")
}

func TestLiveToolRunner_ExecSyncSuccess(t *testing.T) {
	skipWithoutShell(t)
	r := NewLiveToolRunner("/bin/sh", nil)

	res := r.Line("-c 'printf hello'").ExecSync()

	require.NoError(t, res.Error)
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, "hello", res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestLiveToolRunner_ExecSyncMissingBinary(t *testing.T) {
	r := NewLiveToolRunner("/nonexistent/bin/gsutil", nil)

	res := r.Line("ls").ExecSync()

	require.Error(t, res.Error)
	assert.Contains(t, res.Error.Error(), "executing /nonexistent/bin/gsutil")
	assert.Equal(t, -1, res.Code)
}

func TestLiveToolRunner_BadQuotingIsLaunchError(t *testing.T) {
	r := NewLiveToolRunner("/bin/sh", nil)

	res := r.Line("cp 'unterminated").Arg("--x").ExecSync()

	require.Error(t, res.Error)
	assert.Contains(t, res.Error.Error(), "parsing command line")
	assert.Equal(t, -1, res.Code)
}
