package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Environment struct {
	StanfordPath string `envconfig:"STANFORD_NER_PATH" default:"stanford_ner"`
	Java         string `envconfig:"JUICER_JAVA" default:"java"`
	JavaHeap     string `envconfig:"JUICER_JAVA_HEAP" default:"1000m"`
	DataPath     string `envconfig:"JUICER_DATA_PATH" default:".juicer_data"`
	LogFile      string `envconfig:"JUICER_LOG_FILE" default:"juicer.log"`
}

// readEnvironment loads .env when present; variables already set win.
func readEnvironment() (Environment, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Environment{}, err
	}

	var env Environment
	err := envconfig.Process("", &env)
	return env, err
}
