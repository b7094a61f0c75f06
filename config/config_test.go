package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")

	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "crm_dashboard", cfg.Database.Name)
	assert.Equal(t, 3000, cfg.Web.Port)
	assert.Equal(t, "md5", cfg.System.PasswordScheme)

	// trend placeholders
	assert.Equal(t, 12.5, cfg.Dashboard.Revenue.Change)
	assert.Equal(t, "up", cfg.Dashboard.Revenue.Trend)
	assert.Equal(t, -3.1, cfg.Dashboard.Orders.Change)
	assert.Equal(t, "down", cfg.Dashboard.Orders.Trend)
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `
web:
  host: 127.0.0.1
  port: 8088
database:
  host: db.internal
  name: crm_prod
  user: crm
  passwd: secret
  port: 5433
dashboard:
  revenue:
    change: 4.2
    trend: up
`
	cfile := filepath.Join(t.TempDir(), "crmdashboard.yml")
	require.NoError(t, os.WriteFile(cfile, []byte(content), 0o644))

	cfg := LoadConfig(cfile)

	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 8088, cfg.Web.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "crm_prod", cfg.Database.Name)
	assert.Equal(t, "crm", cfg.Database.User)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 4.2, cfg.Dashboard.Revenue.Change)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CRM_DB_HOST", "envhost")
	t.Setenv("CRM_DB_PORT", "15432")
	t.Setenv("CRM_SYSTEM_JOBS_ENABLE", "false")

	cfg := LoadConfig("")

	assert.Equal(t, "envhost", cfg.Database.Host)
	assert.Equal(t, 15432, cfg.Database.Port)
	assert.False(t, cfg.System.JobsEnable)
}

func TestDSN(t *testing.T) {
	c := DBConfig{Host: "h", Port: 5432, Name: "d", User: "u", Passwd: "p"}
	assert.Equal(t, "host=h user=u password=p dbname=d port=5432 sslmode=disable", c.DSN())
}
