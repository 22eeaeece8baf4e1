package config

import (
	"github.com/UnaiZubeldia/PCM-CDB-CSV/file"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Config covers the conversion contract that rarely changes per run:
// exporter name, file extensions, delimiter, table names. Per-run values
// (data path, database address) stay on command-line flags in main.
// Values come from config.yml when present, environment always wins.
type Config struct {
	Exporter  string `yaml:"exporter" env:"PCM_EXPORTER" env-default:"Exporter.exe"`
	InputExt  string `yaml:"input_ext" env:"PCM_INPUT_EXT" env-default:".cdb"`
	XMLExt    string `yaml:"xml_ext" env:"PCM_XML_EXT" env-default:".xml"`
	OutputExt string `yaml:"output_ext" env:"PCM_OUTPUT_EXT" env-default:".csv"`
	Comma     string `yaml:"comma" env:"PCM_COMMA" env-default:","`

	CyclistTable string `yaml:"cyclist_table" env:"PCM_CYCLIST_TABLE" env-default:"DYN_cyclist"`
	TeamTable    string `yaml:"team_table" env:"PCM_TEAM_TABLE" env-default:"DYN_team"`

	// Destination schema for the optional MySQL load.
	Database string `yaml:"database" env:"PCM_DATABASE" env-default:"pcm"`
}

const fileName = "config.yml"

func Load() (*Config, error) {
	cfg := &Config{}
	if file.Exists(fileName) {
		if err := cleanenv.ReadConfig(fileName, cfg); err != nil {
			return nil, errors.Wrapf(err, "read %s", fileName)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, "read env")
	}
	return cfg, nil
}

// CommaRune narrows the configured delimiter to one rune, falling back to
// a comma on junk input.
func (c *Config) CommaRune() rune {
	for _, r := range c.Comma {
		return r
	}
	return ','
}
