package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries deployment concerns only. Scoring weights, the taxonomy and
// digest size are fixed behavior, not configuration.
type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Catalog struct {
		Path string `yaml:"path" json:"path"`
	} `yaml:"catalog" json:"catalog"`

	Digest struct {
		// Hour of day (UTC) after which the daily digest is generated
		// when Auto is set. Digests are keyed by UTC date.
		Hour int  `yaml:"hour" json:"hour"`
		Auto bool `yaml:"auto" json:"auto"`
	} `yaml:"digest" json:"digest"`

	Limits struct {
		RequestsPerSec float64 `yaml:"requests_per_sec" json:"requests_per_sec"`
		Burst          int     `yaml:"burst" json:"burst"`
	} `yaml:"limits" json:"limits"`
}

func Default() Config {
	var cfg Config
	cfg.App.Port = 38471
	cfg.Catalog.Path = "data/jobs.yml"
	cfg.Digest.Hour = 9
	cfg.Digest.Auto = false
	cfg.Limits.RequestsPerSec = 20
	cfg.Limits.Burst = 40
	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
