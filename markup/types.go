package markup

import (
	"errors"
)

// ErrConfiguration indicates an unusable phoneme format or quote character.
var ErrConfiguration = errors.New("markup: invalid configuration")

const (
	// DefaultPhonemeFormat wraps the pronunciation in a phoneme span.
	DefaultPhonemeFormat = `%1% (<span class=<QUOTES>phoneme<QUOTES>>/%2%/</span>)`

	// DefaultQuote is substituted for QuotePlaceholder when Config.Quote is empty.
	DefaultQuote = `"`

	// QuotePlaceholder marks quote characters in a phoneme format.
	QuotePlaceholder = "<QUOTES>"

	textPlaceholder          = "%1%"
	pronunciationPlaceholder = "%2%"
)

// Config is the markup section of the engine configuration.
type Config struct {
	// Enabled switches markup on; when false Render returns text unchanged.
	Enabled bool `yaml:"markup_enabled"`

	// PhonemeFormat is the template; empty selects DefaultPhonemeFormat.
	PhonemeFormat string `yaml:"phoneme_format"`

	// Quote replaces QuotePlaceholder; empty selects DefaultQuote.
	Quote string `yaml:"quote"`
}

// DefaultConfig has markup disabled with the default format and quote.
func DefaultConfig() Config {
	return Config{PhonemeFormat: DefaultPhonemeFormat, Quote: DefaultQuote}
}
