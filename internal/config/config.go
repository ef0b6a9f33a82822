package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

const defaultConfigPath = "deskkit.yaml"

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Passbook PassbookConfig `yaml:"passbook"`
	Grades   GradesConfig   `yaml:"grades"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

type PassbookConfig struct {
	DBPath string `yaml:"db_path" env:"DB_PATH"`
}

type GradesConfig struct {
	DBPath           string   `yaml:"db_path" env:"GRADES_DB_PATH"`
	Subjects         []string `yaml:"subjects" env:"GRADES_SUBJECTS" envSeparator:","`
	RejectDuplicates bool     `yaml:"reject_duplicates" env:"GRADES_REJECT_DUPLICATES"`
	ExportDir        string   `yaml:"export_dir" env:"GRADES_EXPORT_DIR"`
}

func Default() Config {
	subjects := make([]string, len(domain.DefaultSubjects))
	copy(subjects, domain.DefaultSubjects)
	return Config{
		Logging:  LoggingConfig{Level: "warn", Format: "console"},
		Passbook: PassbookConfig{DBPath: "data/passwords.db"},
		Grades: GradesConfig{
			DBPath:           "noten.db",
			Subjects:         subjects,
			RejectDuplicates: true,
			ExportDir:        ".",
		},
	}
}

// Load starts from Default, applies the YAML file named by CONFIG_PATH (or
// deskkit.yaml when present) and then the environment.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.Grades.Subjects) == 0 {
		cfg.Grades.Subjects = Default().Grades.Subjects
	}

	return cfg, nil
}
