package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-d", "-rate-max", "-min-cadence"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"separate values", []string{"-a", ":50051", "-x", "1", "-d", "memory"}, serverFlags, []string{"-a", ":50051", "-d", "memory"}},
		{"inline values", []string{"-rate-max=5", "--min-cadence=45s", "-l=zap"}, serverFlags, []string{"-rate-max=5", "--min-cadence=45s"}},
		{"double dash matches single dash", []string{"--a", ":1"}, serverFlags, []string{"--a", ":1"}},
		{"allowed spelled with two dashes", []string{"-config", "c.json"}, []string{"--config"}, []string{"-config", "c.json"}},
		{"flag at the end", []string{"-d"}, serverFlags, []string{"-d"}},
		{"next flag is not a value", []string{"-d", "-a", ":1"}, serverFlags, []string{"-d", "-a", ":1"}},
		{"negative number is a value", []string{"-rate-max", "-1"}, serverFlags, []string{"-rate-max", "-1"}},
		{"positionals and bare dashes ignored", []string{"seed", "-", "--", "memory"}, serverFlags, []string{}},
		{"repeated flag kept in order", []string{"-a", ":1", "-a", ":2"}, serverFlags, []string{"-a", ":1", "-a", ":2"}},
		{"empty", nil, serverFlags, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/passport/client.json"}, "/etc/passport/client.json"},
		{"long", []string{"-config", "server.json", "-a", ":50051"}, "server.json"},
		{"double dash inline", []string{"--config=/tmp/p.json"}, "/tmp/p.json"},
		{"absent", []string{"-db", "queue.db", "-token", "t"}, ""},
		{"last wins", []string{"-c", "a.json", "-config", "b.json"}, "b.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JsonConfigFlags(tt.args))
		})
	}
}
