package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendkit/sendkit/pkg/config"
)

type mailConfig struct {
	Host      string   `env:"TEST_MAIL_HOST" envDefault:"localhost"`
	Port      int      `env:"TEST_MAIL_PORT" envDefault:"587"`
	Tags      []string `env:"TEST_MAIL_TAGS" envSeparator:","`
	AsyncSend bool     `env:"TEST_MAIL_ASYNC" envDefault:"true"`
}

type requiredConfig struct {
	Sender string `env:"TEST_REQUIRED_SENDER,required"`
}

func TestLoad_Defaults(t *testing.T) {
	config.Reset()

	var cfg mailConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 587, cfg.Port)
	assert.True(t, cfg.AsyncSend)
	assert.Empty(t, cfg.Tags)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.Reset()

	t.Setenv("TEST_MAIL_HOST", "smtp.example.com")
	t.Setenv("TEST_MAIL_PORT", "2525")
	t.Setenv("TEST_MAIL_TAGS", "welcome,reset")

	var cfg mailConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "smtp.example.com", cfg.Host)
	assert.Equal(t, 2525, cfg.Port)
	assert.Equal(t, []string{"welcome", "reset"}, cfg.Tags)
}

func TestLoad_CachedBetweenCalls(t *testing.T) {
	config.Reset()

	t.Setenv("TEST_MAIL_HOST", "first.example.com")

	var first mailConfig
	require.NoError(t, config.Load(&first))

	// A changed environment must not be observed without a Reset.
	t.Setenv("TEST_MAIL_HOST", "second.example.com")

	var second mailConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first.example.com", second.Host)

	config.Reset()

	var third mailConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second.example.com", third.Host)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	config.Reset()

	err := config.Load[mailConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	config.Reset()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnv)
}
