package main

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/diagviz/internal/model"
	"github.com/tinytelemetry/diagviz/internal/sampling"
)

// formatterConfig is one `formatters` entry. Each match item is either a
// series alias or UUID, or a glob over series names.
type formatterConfig struct {
	Match    []string `mapstructure:"match"`
	Decimals int      `mapstructure:"decimals"`
	Scale    float64  `mapstructure:"scale"`
	Unit     string   `mapstructure:"unit"`
}

type cliConfig struct {
	Interval           time.Duration     `mapstructure:"interval"`
	FrameInterval      time.Duration     `mapstructure:"frame-interval"`
	Include            []string          `mapstructure:"include"`
	Exclude            []string          `mapstructure:"exclude"`
	StyleFile          string            `mapstructure:"style-file"`
	CellWidth          float64           `mapstructure:"cell-width"`
	CellHeight         float64           `mapstructure:"cell-height"`
	RuntimeStats       bool              `mapstructure:"runtime-stats"`
	RuntimeInterval    time.Duration     `mapstructure:"runtime-interval"`
	Wave               bool              `mapstructure:"wave"`
	ReverseScrollWheel bool              `mapstructure:"reverse-scroll-wheel"`
	Formatters         []formatterConfig `mapstructure:"formatters"`
	LogFile            string            `mapstructure:"log-file"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix("DIAGVIZ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("interval", model.DefaultInterval)
	v.SetDefault("frame-interval", model.DefaultFrameInterval)
	v.SetDefault("include", []string{})
	v.SetDefault("exclude", []string{})
	v.SetDefault("style-file", "")
	v.SetDefault("cell-width", model.DefaultCellWidth)
	v.SetDefault("cell-height", model.DefaultCellHeight)
	v.SetDefault("runtime-stats", true)
	v.SetDefault("runtime-interval", model.DefaultRuntimeInterval)
	v.SetDefault("wave", false)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("formatters", []formatterConfig{})
	v.SetDefault("log-file", filepath.Join(os.TempDir(), "diagviz.log"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		v.SetConfigFile(filepath.Join(home, ".config", "diagviz", "config.yml"))
	}

	// Only the default location may be missing; a file named with -config
	// must exist.
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &configFileNotFound) || os.IsNotExist(err)
		if !missing || configPath != "" {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func parseSeriesRefs(refs []string) ([]model.SeriesID, error) {
	ids := make([]model.SeriesID, 0, len(refs))
	for _, ref := range refs {
		id, err := model.ParseSeriesID(ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// filterPolicy turns the include/exclude lists into a filter. Setting both
// is rejected since only one filter kind is active at a time.
func (c cliConfig) filterPolicy() (sampling.FilterPolicy, error) {
	if len(c.Include) > 0 && len(c.Exclude) > 0 {
		return sampling.FilterPolicy{}, errors.New("include and exclude are mutually exclusive")
	}
	switch {
	case len(c.Include) > 0:
		ids, err := parseSeriesRefs(c.Include)
		if err != nil {
			return sampling.FilterPolicy{}, fmt.Errorf("include: %w", err)
		}
		return sampling.IncludeFilter(ids...), nil
	case len(c.Exclude) > 0:
		ids, err := parseSeriesRefs(c.Exclude)
		if err != nil {
			return sampling.FilterPolicy{}, fmt.Errorf("exclude: %w", err)
		}
		return sampling.ExcludeFilter(ids...), nil
	}
	return sampling.AcceptAllFilter(), nil
}

// formatRules converts the formatters list in declaration order.
func (c cliConfig) formatRules() ([]sampling.Rule, error) {
	rules := make([]sampling.Rule, 0, len(c.Formatters))
	for i, f := range c.Formatters {
		if len(f.Match) == 0 {
			return nil, fmt.Errorf("formatters[%d]: empty match", i)
		}
		var m sampling.Matcher
		for _, ref := range f.Match {
			if id, err := model.ParseSeriesID(ref); err == nil {
				m.IDs = append(m.IDs, id)
				continue
			}
			if _, err := path.Match(ref, ""); err != nil {
				return nil, fmt.Errorf("formatters[%d]: %q: %w", i, ref, err)
			}
			m.Names = append(m.Names, ref)
		}
		rules = append(rules, sampling.Rule{
			Match:  m,
			Format: sampling.Format{Decimals: f.Decimals, Scale: f.Scale, Unit: f.Unit},
		})
	}
	return rules, nil
}
