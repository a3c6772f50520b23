package config

import (
	"os"
	"path/filepath"
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

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000
read_timeout = 15
write_timeout = 15

[database]
host = "db.internal"
port = 5432
user = "scheduling"
password = "secret"
dbname = "pmc_scheduling"
max_open_conns = 25

[logs]
file = "logs/service.log"
level = "debug"

[metrics]
enabled = true

[staff_service]
url = "http://staff:8081"
timeout = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "http://staff:8081", cfg.StaffService.URL)

	// Значения по умолчанию для метрик
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "pmc-scheduling-service", cfg.Metrics.ServiceName)
}

func TestLoad_DefaultPort(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"

[staff_service]
url = "http://localhost:8081"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
}

func TestLoad_MissingDatabaseHost(t *testing.T) {
	path := writeConfig(t, `
[staff_service]
url = "http://localhost:8081"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
}

func TestLoad_MissingStaffServiceURL(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staff_service.url")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "scheduling",
		Password: "secret",
		DBName:   "pmc_scheduling",
	}.DSN()

	assert.Equal(t, "host=localhost port=5432 user=scheduling password=secret dbname=pmc_scheduling sslmode=disable", dsn)
}
