package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
)

type Config struct {
	Data        string `yaml:"data" toml:"data" validate:"required"`
	LabelColumn int    `yaml:"label_column" toml:"label_column"`
	Header      bool   `yaml:"header" toml:"header"`
	Binarize    bool   `yaml:"binarize" toml:"binarize"`
	MaxDepth    int    `yaml:"max_depth" toml:"max_depth" validate:"gte=0"`
	Trees       int    `yaml:"trees" toml:"trees" validate:"gte=1"`
	Seed        int64  `yaml:"seed" toml:"seed"`

	Generate Generate `yaml:"generate" toml:"generate"`
	Curve    Curve    `yaml:"curve" toml:"curve"`
}

// Generate controls the synthetic dataset written before training.
type Generate struct {
	Enabled  bool    `yaml:"enabled" toml:"enabled"`
	Rows     int     `yaml:"rows" toml:"rows" validate:"gte=0"`
	Features int     `yaml:"features" toml:"features" validate:"gte=0"`
	Noise    float64 `yaml:"noise" toml:"noise" validate:"gte=0,lte=1"`
}

// Curve controls the accuracy-by-depth report of the analyzer.
type Curve struct {
	MaxDepth int    `yaml:"max_depth" toml:"max_depth" validate:"gte=0"`
	OutImg   string `yaml:"out_img" toml:"out_img"`
	OutCSV   string `yaml:"out_csv" toml:"out_csv"`
}

func Default() Config {
	return Config{
		Data:        "data/synthetic.csv",
		LabelColumn: -1,
		Header:      true,
		MaxDepth:    3,
		Trees:       11,
		Seed:        1,
		Generate:    Generate{Rows: 2000, Features: 8, Noise: 0.05},
		Curve:       Curve{MaxDepth: 8, OutImg: "data/depth_curve.png", OutCSV: "data/depth_curve.csv"},
	}
}

// Load reads a YAML or TOML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("formato de configuração não suportado: %s", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("ler %s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New()

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var out error
	for _, fe := range verrs {
		out = multierr.Append(out, fmt.Errorf("%s: regra %q violada (valor %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return out
}
