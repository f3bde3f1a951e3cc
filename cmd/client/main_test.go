package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gopassport/internal/auth"
)

func TestRootCmd_RunsShellUntilExit(t *testing.T) {
	token, err := auth.GenerateToken("traveller-1", []byte("s3cr3t"), time.Hour)
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := rootCmd(strings.NewReader("status\nexit\n"), &out)
	cmd.SetArgs([]string{
		"-a", "127.0.0.1:1",
		"-t", "50ms",
		"-db", filepath.Join(t.TempDir(), "queue.db"),
		"-token", token,
	})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "User traveller-1, offline. Queued: 0.")
}

func TestRootCmd_BadFlag(t *testing.T) {
	cmd := rootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-i", "soon"})
	assert.Error(t, cmd.Execute())
}
