package config

import (
	"testing"
	"time"

	"github.com/DanRulev/uniprep.git/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()

	base := map[string]string{
		"CONFIG_NAME": "config-test",
		"BOT_TOKEN":   "",
		"DB_DRIVER":   "",
		"DB_PATH":     "",
		"DB_HOST":     "",
		"DB_PORT":     "",
		"DB_USER":     "",
		"DB_NAME":     "",
		"DB_SSL":      "",
		"HTTP_ADDR":   "",
		"AI_API_KEY":  "",
		"JWT_SECRET":  "",
	}
	for k, v := range env {
		base[k] = v
	}
	for k, v := range base {
		t.Setenv(k, v)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantErr   bool
		checkFunc func(*testing.T, *Config)
	}{
		{
			name: "sqlite with defaults",
			env:  map[string]string{"DB_DRIVER": "sqlite3", "DB_PATH": "/tmp/uniprep.db"},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "development", cfg.Env)
				assert.Equal(t, "sqlite3", cfg.DB.Driver)
				assert.Equal(t, "/tmp/uniprep.db", cfg.DB.Path)
				assert.Equal(t, ":8080", cfg.HTTP.Addr)
				assert.Equal(t, time.Hour, cfg.Reminder.Every)
				assert.Equal(t, 4, cfg.Reminder.StartHour)
				assert.Equal(t, 18, cfg.Reminder.EndHour)
				assert.Equal(t, 10, cfg.Review.DefaultTake)
				assert.Equal(t, 100, cfg.Review.MaxTake)
				assert.Equal(t, 20, cfg.Review.EntryTestTake)
				assert.Equal(t, "https://api.openai.com/v1", cfg.AI.BaseURL)
				assert.Empty(t, cfg.BotToken)
				assert.Empty(t, cfg.Auth.JWTSecret)
				assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
				assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTTL)
				assert.Equal(t, 10, cfg.Auth.BcryptCost)
			},
		},
		{
			name: "postgres from env",
			env: map[string]string{
				"DB_DRIVER":  "postgres",
				"DB_HOST":    "db",
				"DB_PORT":    "5432",
				"DB_USER":    "uniprep",
				"DB_NAME":    "uniprep",
				"DB_SSL":     "require",
				"BOT_TOKEN":  "token",
				"HTTP_ADDR":  ":9090",
				"AI_API_KEY": "key",
				"JWT_SECRET": "0123456789abcdef0123456789abcdef",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "db", cfg.DB.Conn.Host)
				assert.Equal(t, "require", cfg.DB.Conn.SSL)
				assert.Equal(t, "token", cfg.BotToken)
				assert.Equal(t, ":9090", cfg.HTTP.Addr)
				assert.Equal(t, "key", cfg.AI.APIKey)
				assert.Equal(t, "0123456789abcdef0123456789abcdef", cfg.Auth.JWTSecret)
			},
		},
		{
			name:    "postgres without connection",
			env:     map[string]string{"DB_DRIVER": "postgres"},
			wantErr: true,
		},
		{
			name:    "sqlite without path",
			env:     map[string]string{"DB_DRIVER": "sqlite3"},
			wantErr: true,
		},
		{
			name:    "short jwt secret",
			env:     map[string]string{"DB_DRIVER": "sqlite3", "DB_PATH": "/tmp/uniprep.db", "JWT_SECRET": "short"},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"DB_DRIVER": "mysql"},
			wantErr: true,
		},
		{
			name: "bad ssl mode",
			env: map[string]string{
				"DB_DRIVER": "postgres",
				"DB_HOST":   "db",
				"DB_PORT":   "5432",
				"DB_USER":   "u",
				"DB_NAME":   "n",
				"DB_SSL":    "maybe",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			cfg, err := Init()
			if tt.wantErr {
				require.ErrorIs(t, err, validator.ErrInvalid)
				return
			}

			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}
