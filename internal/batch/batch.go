// Package batch reads job files for the batch command: a YAML list of
// quantities to render, each with its own denomination and output mode.
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeString Mode = "string"
	ModeList   Mode = "list"
	ModeMap    Mode = "map"
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "string":
		return ModeString, nil
	case "list":
		return ModeList, nil
	case "map":
		return ModeMap, nil
	default:
		return ModeString, fmt.Errorf("%q is not a valid output mode", s)
	}
}

type Job struct {
	Units    string  `yaml:"units"`
	Mode     Mode    `yaml:"mode,omitempty"`
	Quantity float64 `yaml:"quantity"`
}

type file struct {
	Jobs []Job `yaml:"jobs"`
}

// Parse decodes a batch job file. Decoding is strict, unknown keys are an
// error. An empty mode defaults to "string".
func Parse(content []byte) ([]Job, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("batch file has no jobs")
		}
		return nil, err
	}
	if len(f.Jobs) == 0 {
		return nil, errors.New("batch file has no jobs")
	}

	for i := range f.Jobs {
		job := &f.Jobs[i]
		if job.Units == "" {
			return nil, fmt.Errorf("job %d: units cannot be empty", i+1)
		}
		if math.IsNaN(job.Quantity) || math.IsInf(job.Quantity, 0) {
			return nil, fmt.Errorf("job %d: quantity must be a finite number", i+1)
		}
		mode, err := ParseMode(string(job.Mode))
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		job.Mode = mode
	}

	return f.Jobs, nil
}
