package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8083
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "availability"
password = "secret"
dbname = "availability_service"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = ""
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "availability-service"

[staff_service]
url = "http://localhost:8084"
timeout = 5

[rate_limit]
enabled = true
requests_per_second = 50.0
burst = 100
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "availability_service", cfg.Database.DBName)
	assert.Equal(t, "http://localhost:8084", cfg.StaffService.URL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 50.0, cfg.RateLimit.RequestsPerSecond)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mangle string
	}{
		{name: "zero port", mangle: "http_port = 8083"},
		{name: "missing db host", mangle: `host = "localhost"`},
		{name: "missing staff service url", mangle: `url = "http://localhost:8084"`},
	}

	replacements := map[string]string{
		"http_port = 8083":              "http_port = 0",
		`host = "localhost"`:            `host = ""`,
		`url = "http://localhost:8084"`: `url = ""`,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := strings.Replace(validConfig, tt.mangle, replacements[tt.mangle], 1)

			_, err := Load(writeConfig(t, broken))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "svc",
		Password: "pw",
		DBName:   "availability",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=svc password=pw dbname=availability sslmode=disable", cfg.DSN())
}
