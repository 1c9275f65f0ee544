package config

import (
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cardloop/app/params"
	"cardloop/internal/cards"
	"cardloop/internal/deck"
	"cardloop/internal/shuffle"
	"cardloop/internal/types"
)

// Flag names double as viper keys and, upper-cased with '-' replaced by '_' and
// prefixed with params.EnvPrefix, as environment variables.
const (
	FlagConfig          = "config"
	FlagWidth           = "width"
	FlagCount           = "count"
	FlagMaxRounds       = "max-rounds"
	FlagMaxArenaBytes   = "max-arena-bytes"
	FlagCheckInvariants = "check-invariants"
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
	FlagRoundsExit      = "rounds-exit"
)

type Config struct {
	Width           cards.Width
	Counting        shuffle.Counting
	MaxRounds       uint64
	MaxArenaBytes   uint64
	CheckInvariants bool
	LogLevel        zerolog.Level
	LogJSON         bool
	// RoundsExit reports the round count through the process exit status.
	RoundsExit bool
}

// AddFlags registers every configuration flag on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "read configuration from this file (yaml, toml or json)")
	fs.String(FlagWidth, strconv.Itoa(params.DefaultWidth), "card value width in bits (8, 16 or 32); bounds the deck size")
	fs.String(FlagCount, shuffle.CountRedeals.String(), "round counting convention (redeals|executed)")
	fs.Uint64(FlagMaxRounds, 0, "give up after this many rounds (0 = no limit)")
	fs.Uint64(FlagMaxArenaBytes, 0, "card storage budget in bytes (0 = unlimited)")
	fs.Bool(FlagCheckInvariants, true, "verify the deck is a permutation after every round")
	fs.String(FlagLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error|disabled)")
	fs.String(FlagLogFormat, "plain", "log format (plain|json)")
	fs.Bool(FlagRoundsExit, true, "exit with the round count as status")
}

// NewViper binds fs and the environment, then reads the config file named by
// --config, if any.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(params.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidConfig, "bind flags: %v", err)
	}

	if path := v.GetString(FlagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidConfig, "read %s: %v", path, err)
		}
	}
	return v, nil
}

// Load validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	width, err := cards.ParseWidth(v.GetString(FlagWidth))
	if err != nil {
		return Config{}, err
	}
	counting, err := shuffle.ParseCounting(v.GetString(FlagCount))
	if err != nil {
		return Config{}, err
	}
	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString(FlagLogLevel)))
	if err != nil {
		return Config{}, errorsmod.Wrapf(types.ErrInvalidConfig, "log level: %v", err)
	}

	cfg := Config{
		Width:           width,
		Counting:        counting,
		MaxRounds:       v.GetUint64(FlagMaxRounds),
		MaxArenaBytes:   v.GetUint64(FlagMaxArenaBytes),
		CheckInvariants: v.GetBool(FlagCheckInvariants),
		LogLevel:        level,
		RoundsExit:      v.GetBool(FlagRoundsExit),
	}

	switch format := strings.ToLower(v.GetString(FlagLogFormat)); format {
	case "", "plain":
	case "json":
		cfg.LogJSON = true
	default:
		return Config{}, errorsmod.Wrapf(types.ErrInvalidConfig, "unknown log format %q", format)
	}
	return cfg, nil
}

// SimulatorOptions turns the configuration into simulator options. Extra options
// are applied last.
func (c Config) SimulatorOptions(logger log.Logger, extra ...shuffle.Option) []shuffle.Option {
	opts := []shuffle.Option{
		shuffle.WithWidth(c.Width),
		shuffle.WithCounting(c.Counting),
		shuffle.WithMaxRounds(c.MaxRounds),
		shuffle.WithBudget(deck.Budget(c.MaxArenaBytes)),
		shuffle.WithInvariantChecks(c.CheckInvariants),
		shuffle.WithLogger(logger),
	}
	return append(opts, extra...)
}
