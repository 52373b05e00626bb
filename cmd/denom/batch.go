package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/prymitive/denom"
	"github.com/prymitive/denom/internal/batch"
	"github.com/prymitive/denom/internal/config"
)

var batchCmd = &cli.Command{
	Name:   "batch",
	Usage:  "Render every job from one or more YAML batch files",
	Action: actionBatch,
}

func actionBatch(c *cli.Context) (err error) {
	meta, err := actionSetup(c)
	if err != nil {
		return err
	}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one batch file required")
	}

	for _, path := range paths {
		if err = runBatch(meta.cfg, path); err != nil {
			return err
		}
	}

	return nil
}

// runBatch renders jobs in file order, one line each. The first failing job
// aborts the run, lines already printed stay printed.
func runBatch(cfg config.Config, path string) error {
	slog.Info("Loading batch file", slog.String("path", path))
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	jobs, err := batch.Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse batch file %q: %w", path, err)
	}

	for i, job := range jobs {
		line, err := runJob(cfg, job)
		if err != nil {
			return fmt.Errorf("job %d: %w", i+1, err)
		}
		fmt.Println(line)
	}

	return nil
}

func runJob(cfg config.Config, job batch.Job) (string, error) {
	den := resolveUnits(cfg, job.Units)

	switch job.Mode {
	case batch.ModeList:
		list, err := denom.List(job.Quantity, den)
		if err != nil {
			return "", err
		}
		values := make([]string, 0, len(list))
		for _, magnitude := range list {
			values = append(values, strconv.FormatInt(magnitude, 10))
		}
		return strings.Join(values, " "), nil
	case batch.ModeMap:
		m, err := denom.Map(job.Quantity, den)
		if err != nil {
			return "", err
		}
		data, err := json.Marshal(m)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return denom.String(job.Quantity, den)
	}
}
