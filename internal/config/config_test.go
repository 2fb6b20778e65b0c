package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "staff_session", cfg.Session.StaffCookie)
	assert.Equal(t, "kiosk_session", cfg.Session.KioskCookie)
	assert.Equal(t, 720*time.Hour, cfg.Session.StaffTTL())
	assert.Equal(t, 8760*time.Hour, cfg.Session.KioskTTL())
	assert.Equal(t, 60, cfg.Auth.QRTokenTTLSeconds)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SESSION_STAFF_TTL_HOURS", "24")
	t.Setenv("AUTH_QR_TOKEN_TTL_SECONDS", "15")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.App.Addr())
	assert.Equal(t, 24*time.Hour, cfg.Session.StaffTTL())
	assert.Equal(t, 15, cfg.Auth.QRTokenTTLSeconds)
	assert.False(t, cfg.Postgres.RunMigrations)
}
