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

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "Asia/Tokyo", cfg.App.Timezone)
	assert.False(t, cfg.Database.Configured())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
user = "showcase"
password = "secret"
dbname = "reservations"

[line.channels.clinic]
channel_secret = "file-secret"
channel_access_token = "file-token"
`)

	t.Setenv("ADMIN_JWT_SECRET", "env-secret")
	t.Setenv("LINE_SALON_CHANNEL_SECRET", "salon-secret")
	t.Setenv("LINE_SALON_CHANNEL_ACCESS_TOKEN", "salon-token")
	t.Setenv("LINE_SALON_LIFF_ID", "1234-abcd")
	t.Setenv("LINE_CLINIC_LIFF_ID", "clinic-liff")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "env-secret", cfg.Admin.JWTSecret)
	assert.True(t, cfg.Database.Configured())
	assert.Equal(t, "host=db.local port=5432 user=showcase password=secret dbname=reservations sslmode=disable", cfg.Database.DSN())

	salon, ok := cfg.Line.Channel("salon")
	require.True(t, ok)
	assert.Equal(t, "salon-secret", salon.ChannelSecret)
	assert.Equal(t, "1234-abcd", salon.LiffID)

	clinic, ok := cfg.Line.Channel("clinic")
	require.True(t, ok)
	assert.Equal(t, "file-secret", clinic.ChannelSecret)
	assert.Equal(t, "clinic-liff", clinic.LiffID)

	_, ok = cfg.Line.Channel("restaurant")
	assert.False(t, ok)
}

func TestLoad_DSNOverride(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost/db?sslmode=disable")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.True(t, cfg.Database.Configured())
	assert.Equal(t, "postgres://u:p@localhost/db?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "broken toml",
			content: "[server\nhttp_port = ",
			wantErr: ErrDecodeFile,
		},
		{
			name:    "bad port",
			content: "[server]\nhttp_port = 70000",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad timezone",
			content: "[app]\ntimezone = \"Mars/Olympus\"",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "events without url",
			content: "[events]\nenabled = true",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAppConfig_Location(t *testing.T) {
	assert.Equal(t, "Asia/Tokyo", AppConfig{Timezone: "Asia/Tokyo"}.Location().String())
	assert.Equal(t, "UTC", AppConfig{Timezone: "nowhere"}.Location().String())
}
