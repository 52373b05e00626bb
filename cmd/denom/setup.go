package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/prymitive/denom/internal/config"
	"github.com/prymitive/denom/internal/log"
)

type actionMeta struct {
	cfg config.Config
}

// actionSetup runs the shared command setup: logging first, so config load
// problems are reported through the configured logger, then the config file.
func actionSetup(c *cli.Context) (meta actionMeta, err error) {
	level, err := log.ParseLevel(c.String(logLevelFlag))
	if err != nil {
		return meta, fmt.Errorf("failed to set log level: %w", err)
	}
	log.Setup(level, c.Bool(noColorFlag))

	meta.cfg, err = config.Load(c.Path(configFlag), c.IsSet(configFlag))
	if err != nil {
		return meta, fmt.Errorf("failed to load config file %q: %w", c.Path(configFlag), err)
	}

	return meta, nil
}
