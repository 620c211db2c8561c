package splineplots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/models"
)

var (
	errRequired = errors.New("required")
	errNegative = errors.New("must not be negative")
)

// LoadConfig reads a figure configuration from a JSON file.
func LoadConfig(path string) (models.FigureConfig, error) {
	var cfg models.FigureConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, NewConfigError(path, "file", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, NewConfigError(path, "json", err)
	}
	if cfg.Name == "" {
		cfg.Name = path
	}

	return cfg, Validate(cfg)
}

// Validate checks that cfg describes a drawable figure.
func Validate(cfg models.FigureConfig) error {
	if cfg.Output == "" {
		return NewConfigError(cfg.Name, "output", errRequired)
	}
	if f, err := ParseFormat(filepath.Ext(cfg.Output)); err != nil || f == "" {
		return NewConfigError(cfg.Name, "output", ErrUnsupportedFormat)
	}
	if len(cfg.Targets) == 0 {
		return NewConfigError(cfg.Name, "targets", errRequired)
	}
	if cfg.HSpace < 0 {
		return NewConfigError(cfg.Name, "hspace", errNegative)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return NewConfigError(cfg.Name, "size", errNegative)
	}

	for i, t := range cfg.Targets {
		if t.MarkerSize < 0 {
			return NewConfigError(cfg.Name, fmt.Sprintf("targets[%d].marker_size", i), errNegative)
		}
		for j, s := range t.Lines {
			if err := validateSeries(cfg.Name, fmt.Sprintf("targets[%d].lines[%d]", i, j), s); err != nil {
				return err
			}
		}
		if t.Scatter != nil {
			if err := validateSeries(cfg.Name, fmt.Sprintf("targets[%d].scatter", i), *t.Scatter); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateSeries(figure, field string, s models.SeriesConfig) error {
	switch {
	case s.Table == "":
		return NewConfigError(figure, field+".table", errRequired)
	case s.X == "":
		return NewConfigError(figure, field+".x", errRequired)
	case s.Y == "":
		return NewConfigError(figure, field+".y", errRequired)
	}
	return nil
}
