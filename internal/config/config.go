package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/zclconf/go-cty/cty"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

type Config struct {
	Denominations []Denomination `hcl:"denomination,block" json:"denominations,omitempty"`
}

func (cfg Config) String() string {
	content, _ := json.MarshalIndent(cfg, "", "  ")
	return string(content)
}

// Denomination returns the custom denomination block with the given name.
func (cfg Config) Denomination(name string) (Denomination, bool) {
	for _, d := range cfg.Denominations {
		if d.Name == name {
			return d, true
		}
	}
	return Denomination{}, false
}

func getContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			vars[fmt.Sprintf("ENV_%s", e[:i])] = cty.StringVal(e[i+1:])
		}
	}
	return &hcl.EvalContext{Variables: vars}
}

func Load(path string, failOnMissing bool) (cfg Config, err error) {
	if _, err = os.Stat(path); err == nil || failOnMissing {
		slog.Info("Loading configuration file", slog.String("path", path))
		ectx := getContext()
		if err = hclsimple.DecodeFile(path, ectx, &cfg); err != nil {
			return cfg, err
		}
	}

	names := make([]string, 0, len(cfg.Denominations))
	for _, den := range cfg.Denominations {
		if err = den.validate(); err != nil {
			return cfg, err
		}
		if slices.Contains(names, den.Name) {
			return cfg, fmt.Errorf("denomination name must be unique, found two or more config blocks using %q name", den.Name)
		}
		names = append(names, den.Name)
	}

	return cfg, nil
}
