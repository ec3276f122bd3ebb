package app

import (
	"io"

	"cosmossdk.io/log"
)

// NewLogger builds the host logger described by cfg.
func NewLogger(w io.Writer, cfg Config) (log.Logger, error) {
	lvl, err := cfg.ZerologLevel()
	if err != nil {
		return nil, err
	}
	opts := []log.Option{log.LevelOption(lvl)}
	if cfg.LogFormat == LogFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}
