package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"fanbase/x/fanbase/types"
)

const (
	FlagHome            = "home"
	FlagChainID         = "chain-id"
	FlagDBBackend       = "db-backend"
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
	FlagDenom           = "denom"
	FlagAuthority       = "authority"
	FlagCheckInvariants = "check-invariants"

	LogFormatJSON  = "json"
	LogFormatPlain = "plain"
)

// Config is the host configuration. It is read from flags, FANBASE_* env
// variables and <home>/config/app.toml, in that order of precedence.
type Config struct {
	Home            string `mapstructure:"home"`
	ChainID         string `mapstructure:"chain-id"`
	Bech32Prefix    string `mapstructure:"bech32-prefix"`
	Denom           string `mapstructure:"denom"`
	Authority       string `mapstructure:"authority"`
	DBBackend       string `mapstructure:"db-backend"`
	LogLevel        string `mapstructure:"log-level"`
	LogFormat       string `mapstructure:"log-format"`
	CheckInvariants bool   `mapstructure:"check-invariants"`
}

func DefaultConfig() Config {
	return Config{
		Home:            DefaultNodeHome,
		ChainID:         ChainID,
		Bech32Prefix:    AccountAddressPrefix,
		Denom:           types.DefaultDenom,
		DBBackend:       "goleveldb",
		LogLevel:        zerolog.InfoLevel.String(),
		LogFormat:       LogFormatPlain,
		CheckInvariants: true,
	}
}

func (c Config) Validate() error {
	if c.ChainID == "" {
		return fmt.Errorf("chain-id must not be empty")
	}
	if c.Bech32Prefix == "" {
		return fmt.Errorf("bech32-prefix must not be empty")
	}
	if err := sdk.ValidateDenom(c.Denom); err != nil {
		return fmt.Errorf("invalid denom: %w", err)
	}
	if _, err := c.ZerologLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatJSON, LogFormatPlain:
	default:
		return fmt.Errorf("unknown log-format %q", c.LogFormat)
	}
	return nil
}

func (c Config) ZerologLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log-level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func (c Config) DataDir() string { return filepath.Join(c.Home, "data") }

func (c Config) ConfigDir() string { return filepath.Join(c.Home, "config") }

// NewViper returns a viper instance seeded with the default config and bound
// to FANBASE_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault(FlagHome, def.Home)
	v.SetDefault(FlagChainID, def.ChainID)
	v.SetDefault("bech32-prefix", def.Bech32Prefix)
	v.SetDefault(FlagDenom, def.Denom)
	v.SetDefault(FlagAuthority, def.Authority)
	v.SetDefault(FlagDBBackend, def.DBBackend)
	v.SetDefault(FlagLogLevel, def.LogLevel)
	v.SetDefault(FlagLogFormat, def.LogFormat)
	v.SetDefault(FlagCheckInvariants, def.CheckInvariants)
	return v
}

// LoadConfig merges <home>/config/app.toml, when present, into v and decodes
// the result.
func LoadConfig(v *viper.Viper) (Config, error) {
	home := v.GetString(FlagHome)
	v.SetConfigName("app")
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Join(home, "config"))
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read app.toml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}
