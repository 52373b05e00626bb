package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prymitive/denom"
	"github.com/prymitive/denom/internal/config"
)

func TestMain(t *testing.M) {
	v := t.Run()
	snaps.Clean(t)
	os.Exit(v)
}

func TestConfigLoadMissingFile(t *testing.T) {
	assert := assert.New(t)

	_, err := config.Load("/foo/bar/.denom.hcl", true)
	assert.EqualError(err, "<nil>: Configuration file not found; The configuration file /foo/bar/.denom.hcl does not exist.")
}

func TestConfigLoadMissingFileOk(t *testing.T) {
	assert := assert.New(t)

	cfg, err := config.Load("/foo/bar/.denom.hcl", false)
	assert.Nil(err)
	assert.Empty(cfg.Denominations)
}

func TestConfigErrors(t *testing.T) {
	type testCaseT struct {
		config string
		err    string
	}

	testCases := []testCaseT{
		{
			config: `denomination "" {
  unit {
    name = "byte"
  }
}`,
			err: "denomination name cannot be empty",
		},
		{
			config: `denomination "time" {
  unit {
    name = "second"
  }
}`,
			err: `"time" is a builtin denomination and cannot be redefined`,
		},
		{
			config: `denomination "floppies" {}`,
			err:    `denomination "floppies" must define at least one unit`,
		},
		{
			config: `denomination "floppies" {
  unit {
    name  = ""
    ratio = 1474560
  }
  unit {
    name = "floppy"
  }
}`,
			err: `denomination "floppies": unit name cannot be empty`,
		},
		{
			config: `denomination "floppies" {
  unit {
    name  = "floppy"
    ratio = 1474560
  }
}`,
			err: `denomination "floppies": the last unit cannot set a ratio`,
		},
		{
			config: `denomination "floppies" {
  unit {
    name = "byte"
  }
  unit {
    name = "floppy"
  }
}`,
			err: `denomination "floppies": unit "byte" must set a ratio`,
		},
		{
			config: `denomination "floppies" {
  unit {
    name  = "byte"
    ratio = 0
  }
  unit {
    name = "floppy"
  }
}`,
			err: `denomination "floppies": unit "byte" ratio must be a positive number`,
		},
		{
			config: `denomination "floppies" {
  unit {
    name  = "byte"
    ratio = -10
  }
  unit {
    name = "floppy"
  }
}`,
			err: `denomination "floppies": unit "byte" ratio must be a positive number`,
		},
		{
			config: `denomination "floppies" {
  unit {
    name  = "byte"
    ratio = 1474560
  }
  unit {
    name = "floppy"
  }
}
denomination "floppies" {
  unit {
    name = "disk"
  }
}`,
			err: `denomination name must be unique, found two or more config blocks using "floppies" name`,
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.err, func(t *testing.T) {
			slog.SetDefault(slogt.New(t))
			assert := assert.New(t)

			path := filepath.Join(dir, "config.hcl")
			err := os.WriteFile(path, []byte(tc.config), 0o644)
			assert.NoError(err)

			_, err = config.Load(path, true)
			assert.EqualError(err, tc.err)
		})
	}
}

func TestConfigLoad(t *testing.T) {
	type testCaseT struct {
		title  string
		config string
		names  []string
	}

	testCases := []testCaseT{
		{
			title:  "empty file",
			config: "",
			names:  nil,
		},
		{
			title: "single denomination",
			config: `denomination "floppies" {
  unit {
    name  = "byte"
    ratio = 1474560
  }
  unit {
    name   = "floppy"
    plural = "floppies"
  }
}`,
			names: []string{"floppies"},
		},
		{
			title: "multiple denominations",
			config: `denomination "floppies" {
  unit {
    name  = "byte"
    ratio = 1474560
  }
  unit {
    name   = "floppy"
    plural = "floppies"
  }
}
denomination "reams" {
  unit {
    name  = "sheet"
    ratio = 500
  }
  unit {
    name = "ream"
  }
}`,
			names: []string{"floppies", "reams"},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			slog.SetDefault(slogt.New(t))
			assert := assert.New(t)

			path := filepath.Join(dir, "config.hcl")
			err := os.WriteFile(path, []byte(tc.config), 0o644)
			assert.NoError(err)

			cfg, err := config.Load(path, true)
			assert.NoError(err)

			names := make([]string, 0, len(cfg.Denominations))
			for _, d := range cfg.Denominations {
				names = append(names, d.Name)
			}
			if len(tc.names) == 0 {
				assert.Empty(names)
			} else {
				assert.Equal(tc.names, names)
			}
			snaps.MatchSnapshot(t, cfg.String())
		})
	}
}

func TestConfigEnvVariables(t *testing.T) {
	t.Setenv("CHUNK_NAME", "chunk")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.hcl")
	err := os.WriteFile(path, []byte(`denomination "chunks" {
  unit {
    name  = "block"
    ratio = 512
  }
  unit {
    name = ENV_CHUNK_NAME
  }
}`), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	require.Len(t, cfg.Denominations, 1)
	require.Equal(t, "chunk", cfg.Denominations[0].Units[1].Name)
}

func TestConfigDenomination(t *testing.T) {
	slog.SetDefault(slogt.New(t))

	dir := t.TempDir()
	path := filepath.Join(dir, "config.hcl")
	err := os.WriteFile(path, []byte(`denomination "floppies" {
  unit {
    name  = "byte"
    ratio = 1474560
  }
  unit {
    name   = "floppy"
    plural = "floppies"
  }
}`), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(path, true)
	require.NoError(t, err)

	d, ok := cfg.Denomination("floppies")
	require.True(t, ok)
	require.Equal(t, "floppies", d.Name)

	output, err := denom.String(2949121, denom.Units(d.Parts()...))
	require.NoError(t, err)
	require.Equal(t, "2 floppies and 1 byte", output)

	_, ok = cfg.Denomination("reams")
	require.False(t, ok)
}
