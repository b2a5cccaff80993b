package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"duration string", `"30s"`, 30 * time.Second},
		{"compound string", `"1h30m"`, 90 * time.Minute},
		{"nanosecond number", `5000000000`, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_BadString(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Duration(45 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"45s"`, string(raw))
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	contents := `{
		"app": {"token_sign_key": "hmac-key", "token_duration": "12h"},
		"storage": {"db": {"host": "db.internal", "port": 6432, "user": "bridge", "name": "foodbridge", "sslmode": "require"}},
		"server": {"port": 8080, "shutdown_timeout": "15s", "public_dir": "assets"},
		"payment": {"base_url": "https://payment.intasend.com", "currency": "KES"},
		"oracle": {"model": "gpt-4o-mini", "max_concurrent": 3}
	}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "hmac-key", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "db.internal", cfg.Storage.DB.Host)
	assert.Equal(t, 6432, cfg.Storage.DB.Port)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "assets", cfg.Server.PublicDir)
	assert.Equal(t, "KES", cfg.Payment.Currency)
	assert.Equal(t, 3, cfg.Oracle.MaxConcurrent)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
