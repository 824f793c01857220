package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvguide/config"
	"github.com/katalvlaran/lvguide/markup"
	"github.com/katalvlaran/lvguide/phrase"
)

const fixtureYAML = `
markup_formatter:
  markup_enabled: true
  phoneme_format: "%1% (<span class=<QUOTES>phoneme<QUOTES>>/%2%/</span>)"
units: imperial
narrative:
  pre_max_elements: 3
`

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Markup.Enabled)
	assert.Equal(t, "en-US", cfg.Language)
	assert.Equal(t, phrase.UnitsMetric, cfg.UnitsValue())
	assert.True(t, cfg.DriveOnRight)
	assert.Equal(t, 4, cfg.Narrative.InstructionMaxElements)
}

func TestLoad_YAMLOverDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, "lvguide.yaml", fixtureYAML))
	require.NoError(t, err)
	assert.True(t, cfg.Markup.Enabled)
	assert.Equal(t, `"`, cfg.Markup.Quote, "omitted keys keep defaults")
	assert.Equal(t, phrase.UnitsImperial, cfg.UnitsValue())
	assert.Equal(t, 3, cfg.Narrative.PreMaxElements)
	assert.Equal(t, 1, cfg.Narrative.AlertMaxElements)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvPrecedence(t *testing.T) {
	path := write(t, "lvguide.yaml", fixtureYAML)
	envFile := write(t, ".env", "LVGUIDE_UNITS=metric\nLVGUIDE_MARKUP_ENABLED=false\nLVGUIDE_QUOTE=\"'\"\n")

	cfg, err := config.Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, phrase.UnitsMetric, cfg.UnitsValue(), ".env beats YAML")
	assert.False(t, cfg.Markup.Enabled)
	assert.Equal(t, "'", cfg.Markup.Quote)

	t.Setenv(config.EnvMarkupEnabled, "true")
	t.Setenv(config.EnvDriveOnRight, "false")
	cfg, err = config.Load(path, envFile)
	require.NoError(t, err)
	assert.True(t, cfg.Markup.Enabled, "process env beats .env")
	assert.False(t, cfg.DriveOnRight)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name   string
		yaml   string
		env    map[string]string
		markup bool
	}{
		{name: "BadPhonemeFormat", yaml: "markup_formatter: {phoneme_format: \"%1% only\"}", markup: true},
		{name: "BadQuote", env: map[string]string{config.EnvQuote: "<<"}, markup: true},
		{name: "BadUnits", yaml: "units: furlongs"},
		{name: "BadLanguage", env: map[string]string{config.EnvLanguage: "??"}},
		{name: "NoBuiltinDictionary", yaml: "language: fr-FR"},
		{name: "BadLimit", yaml: "narrative: {alert_max_elements: 0}"},
		{name: "BadBool", env: map[string]string{config.EnvMarkupEnabled: "maybe"}},
		{name: "BadYAML", yaml: "units: [metric"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(write(t, "lvguide.yaml", tc.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalid), err.Error())
			assert.Equal(t, tc.markup, errors.Is(err, markup.ErrConfiguration))
		})
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := config.Load("", filepath.Join(t.TempDir(), ".env"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, config.ErrInvalid))
}

func TestValidate_DictionaryPathAllowsAnyLanguage(t *testing.T) {
	cfg := config.Default()
	cfg.Language = "de-DE"
	assert.Error(t, cfg.Validate())
	cfg.DictionaryPath = "de.yaml"
	assert.NoError(t, cfg.Validate())
}
