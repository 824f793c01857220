package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvguide/markup"
	"github.com/katalvlaran/lvguide/narrative"
	"github.com/katalvlaran/lvguide/phrase"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// builtinLanguage is the language of phrase.Default().
const builtinLanguage = "en-US"

// Config is the engine configuration.
type Config struct {
	Markup markup.Config `yaml:"markup_formatter"`

	// Language selects the built-in dictionary when DictionaryPath is empty.
	Language string `yaml:"language"`

	// Units is "metric" or "imperial".
	Units string `yaml:"units"`

	// DictionaryPath points at a YAML phrase dictionary.
	DictionaryPath string `yaml:"dictionary_path"`

	DriveOnRight bool `yaml:"drive_on_right"`

	Narrative Narrative `yaml:"narrative"`
}

// Narrative holds the per-list element limits of the instruction fields.
type Narrative struct {
	InstructionMaxElements int `yaml:"instruction_max_elements"`
	AlertMaxElements       int `yaml:"alert_max_elements"`
	PreMaxElements         int `yaml:"pre_max_elements"`
	PostMaxElements        int `yaml:"post_max_elements"`
}

// Default returns markup disabled, en-US, metric units, right-hand traffic
// and the narrative builder's default limits.
func Default() Config {
	return Config{
		Markup:       markup.DefaultConfig(),
		Language:     builtinLanguage,
		Units:        phrase.UnitsMetric.String(),
		DriveOnRight: true,
		Narrative: Narrative{
			InstructionMaxElements: narrative.DefaultInstructionMaxElements,
			AlertMaxElements:       narrative.DefaultAlertMaxElements,
			PreMaxElements:         narrative.DefaultPreMaxElements,
			PostMaxElements:        narrative.DefaultPostMaxElements,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (may be empty),
// envFiles and the process environment, and validates it.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	// 1. YAML over defaults.
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
			}
		}
	}

	// 2. .env files, then the process environment.
	env := map[string]string{}
	if len(envFiles) > 0 {
		fromFiles, err := godotenv.Read(envFiles...)
		if err != nil {
			return cfg, fmt.Errorf("config: read env files: %w", err)
		}
		env = fromFiles
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	if err := cfg.apply(env); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

const (
	EnvMarkupEnabled  = "LVGUIDE_MARKUP_ENABLED"
	EnvPhonemeFormat  = "LVGUIDE_PHONEME_FORMAT"
	EnvQuote          = "LVGUIDE_QUOTE"
	EnvLanguage       = "LVGUIDE_LANGUAGE"
	EnvUnits          = "LVGUIDE_UNITS"
	EnvDictionaryPath = "LVGUIDE_DICTIONARY_PATH"
	EnvDriveOnRight   = "LVGUIDE_DRIVE_ON_RIGHT"
)

var envKeys = []string{
	EnvMarkupEnabled, EnvPhonemeFormat, EnvQuote, EnvLanguage,
	EnvUnits, EnvDictionaryPath, EnvDriveOnRight,
}

// apply copies the recognised keys of env onto c.
func (c *Config) apply(env map[string]string) error {
	for key, v := range env {
		switch key {
		case EnvMarkupEnabled, EnvDriveOnRight:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, key, v)
			}
			if key == EnvMarkupEnabled {
				c.Markup.Enabled = b
			} else {
				c.DriveOnRight = b
			}
		case EnvPhonemeFormat:
			c.Markup.PhonemeFormat = v
		case EnvQuote:
			c.Markup.Quote = v
		case EnvLanguage:
			c.Language = v
		case EnvUnits:
			c.Units = v
		case EnvDictionaryPath:
			c.DictionaryPath = v
		}
	}

	return nil
}

// Validate checks every value that would otherwise fail at request time.
func (c Config) Validate() error {
	if _, err := markup.New(c.Markup); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := phrase.ParseUnits(c.Units); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return fmt.Errorf("%w: language %q: %v", ErrInvalid, c.Language, err)
	}
	if c.DictionaryPath == "" && tag.String() != builtinLanguage {
		return fmt.Errorf("%w: no built-in dictionary for %s; set dictionary_path", ErrInvalid, tag)
	}
	n := c.Narrative
	for _, limit := range []int{n.InstructionMaxElements, n.AlertMaxElements, n.PreMaxElements, n.PostMaxElements} {
		if limit < 1 {
			return fmt.Errorf("%w: narrative element limit %d must be positive", ErrInvalid, limit)
		}
	}

	return nil
}

// UnitsValue returns Units parsed; Validate guarantees success.
func (c Config) UnitsValue() phrase.Units {
	u, _ := phrase.ParseUnits(c.Units)

	return u
}
