package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergesByPriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server:  Server{Port: 9090},
			Storage: Storage{DB: DB{Host: "db.internal", User: "bridge", Name: "foodbridge"}},
		},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// Explicit value wins over the default, unset fields are filled in.
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "public", cfg.Server.PublicDir)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Storage.DB.Port)
	assert.Equal(t, "require", cfg.Storage.DB.SSLMode)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, defaultConfig())

	// Defaults carry no DB host/user/name, so validation must reject.
	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_SourceErrorAborts(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "error reading a json file")
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}
