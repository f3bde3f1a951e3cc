package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func noDotenv(t *testing.T) {
	t.Helper()
	orig := dotenvFile
	dotenvFile = filepath.Join(t.TempDir(), "missing.env")
	t.Cleanup(func() { dotenvFile = orig })
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 7*24*time.Hour, c.RetentionPeriod)
	assert.Equal(t, "passport.db", c.DBPath)
	assert.Empty(t, c.AccessToken)
}

func TestLoadConfig_NoSources(t *testing.T) {
	noDotenv(t)

	c, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), c))
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(map[string]any{
		"server_endpoint_addr":  "10.0.0.1:50051",
		"online_check_interval": "5s",
		"retention_period":      int64(time.Hour),
		"access_token":          "tok",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	c := defaults()
	require.NoError(t, parseJson(c, []string{"-c", path}))

	want := defaults()
	want.ServerEndpointAddr = "10.0.0.1:50051"
	want.OnlineCheckInterval = 5 * time.Second
	want.RetentionPeriod = time.Hour
	want.AccessToken = "tok"
	assert.Empty(t, cmp.Diff(want, c))
}

func TestParseJson_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

	assert.Error(t, parseJson(defaults(), []string{"-c", bad}))
	assert.Error(t, parseJson(defaults(), []string{"-config", filepath.Join(t.TempDir(), "absent.json")}))
}

func TestParseEnv(t *testing.T) {
	noDotenv(t)
	t.Setenv("PASSPORT_ACCESS_TOKEN", "env-token")
	t.Setenv("PASSPORT_REQUEST_TIMEOUT", "2s")

	c := defaults()
	require.NoError(t, parseEnv(c))
	assert.Equal(t, "env-token", c.AccessToken)
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(c *Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-i", "10", "-t", "1s", "-db", "q.db", "-token", "jwt", "-l", "zap"},
			want: func(c *Config) {
				c.ServerEndpointAddr = "127.0.0.1:9090"
				c.OnlineCheckInterval = 10 * time.Second
				c.RequestTimeout = time.Second
				c.DBPath = "q.db"
				c.AccessToken = "jwt"
				c.LogBackend = "zap"
			},
		},
		{name: "unknown flags ignored", args: []string{"-x", "1"}, want: func(*Config) {}},
		{name: "incorrect check interval", args: []string{"-i", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			err := parseFlags(c, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, c))
		})
	}
}
