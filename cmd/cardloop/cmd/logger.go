package cmd

import (
	"io"

	"cosmossdk.io/log"

	"cardloop/internal/config"
	"cardloop/internal/types"
)

func newLogger(w io.Writer, cfg config.Config) log.Logger {
	opts := []log.Option{
		log.LevelOption(cfg.LogLevel),
		log.ColorOption(false),
	}
	if cfg.LogJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...).With("module", types.ModuleName)
}
