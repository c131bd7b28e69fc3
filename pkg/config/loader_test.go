package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csrfkit/pkg/config"
)

type testConfig struct {
	Name  string `env:"CFGTEST_NAME" envDefault:"fallback"`
	Count int    `env:"CFGTEST_COUNT" envDefault:"7"`
}

type overrideConfig struct {
	Value string `env:"CFGTEST_VALUE" envDefault:"default"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CFGTEST_VALUE", "from-env")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-env", cfg.Value)
}

func TestLoad_CachedPerType(t *testing.T) {
	var first testConfig
	require.NoError(t, config.Load(&first))

	// Environment changes after the first load are not observed.
	t.Setenv("CFGTEST_NAME", "changed")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	var cfg *testConfig
	assert.Panics(t, func() { config.MustLoad(cfg) })
}
