// Package config loads the settings of the huffman command from flags,
// HUFFMAN_* environment variables and an optional config file.
package config

import (
	"strings"
	"unicode/utf8"

	"github.com/consensys/prefixcode/huffman"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by Load, e.g. HUFFMAN_TEXT.
const EnvPrefix = "HUFFMAN"

// Config holds one run of the huffman command. Exactly one of Text, File and
// Frequencies must be set.
type Config struct {
	Text        string   `mapstructure:"text"`
	File        string   `mapstructure:"file"`
	Frequencies []string `mapstructure:"freq"` // "symbol:count" pairs
	Seed        int64    `mapstructure:"seed"` // 0 breaks ties with crypto/rand
	LogLevel    string   `mapstructure:"log-level"`
}

// Load reads flags, then the environment, then the config file at path if any,
// into a validated Config. Flags win over the environment, which wins over the file.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "binding flags")
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that exactly one input is given.
func (c *Config) Validate() error {
	n := 0
	for _, set := range []bool{c.Text != "", c.File != "", len(c.Frequencies) != 0} {
		if set {
			n++
		}
	}
	switch n {
	case 0:
		return errors.New("no input: one of text, file or freq is required")
	case 1:
		return nil
	default:
		return errors.New("text, file and freq are mutually exclusive")
	}
}

// TieBreaker returns the tie breaker selected by Seed.
func (c *Config) TieBreaker() huffman.TieBreaker {
	if c.Seed == 0 {
		return huffman.CryptoTieBreaker()
	}
	return huffman.SeededTieBreaker(c.Seed)
}

// ParseFrequencies turns the "symbol:count" pairs into a table. A symbol given
// twice has its counts added up.
func (c *Config) ParseFrequencies() (huffman.Frequencies, error) {
	freqs := make(huffman.Frequencies, len(c.Frequencies))
	for _, pair := range c.Frequencies {
		s, n, err := ParsePair(pair)
		if err != nil {
			return nil, err
		}
		if err = freqs.Add(s, n); err != nil {
			return nil, err
		}
	}
	return freqs, nil
}

var symbolUnescaper = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\r`, "\r", `\\`, `\`)

// ParsePair parses "symbol:count". The count follows the last colon, so ":" itself
// is written "::3". The symbol may be one of the escapes \n, \t, \r and \\.
func ParsePair(pair string) (huffman.Symbol, int64, error) {
	i := strings.LastIndexByte(pair, ':')
	if i < 0 {
		return 0, 0, errors.Errorf("malformed frequency %q, expected symbol:count", pair)
	}
	symbol := symbolUnescaper.Replace(pair[:i])
	if utf8.RuneCountInString(symbol) != 1 {
		return 0, 0, errors.Errorf("malformed frequency %q, the symbol must be a single character", pair)
	}
	s, _ := utf8.DecodeRuneInString(symbol)
	n, err := huffman.ParseCount(s, pair[i+1:])
	if err != nil {
		return 0, 0, err
	}
	return s, n, nil
}
