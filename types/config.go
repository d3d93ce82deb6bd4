package types

import (
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"gopkg.in/yaml.v3"
)

const (
	FormatPlain = "plain"
	FormatJSON  = "json"

	ClassifierStanford = "stanford"
	ClassifierProse    = "prose"
)

// Configuration holds the switches that shape a single pipeline run.
type Configuration struct {
	Named          bool     `yaml:"named" json:"named"`
	Whitelisted    bool     `yaml:"whitelisted" json:"whitelisted"`
	Stemming       bool     `yaml:"stemming" json:"stemming"`
	Format         string   `yaml:"format" json:"format"`
	Outfile        string   `yaml:"outfile" json:"outfile"`
	Classifier     string   `yaml:"classifier" json:"classifier"`
	TaggerModel    string   `yaml:"tagger_model" json:"tagger_model"`
	HTML           bool     `yaml:"html" json:"html"`
	ExtraStopwords []string `yaml:"extra_stopwords" json:"extra_stopwords"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Named:      true,
		Format:     FormatPlain,
		Classifier: ClassifierStanford,
	}
}

// LoadConfiguration reads a YAML file over base. Keys missing from the file
// keep the value they have in base.
func LoadConfiguration(filePath string, base Configuration) (Configuration, error) {
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return base, fmt.Errorf("%w: reading configuration %s: %v", ErrInput, filePath, err)
	}

	cfg := base
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return base, fmt.Errorf("%w: parsing configuration %s: %v", ErrArgument, filePath, err)
	}

	return cfg, cfg.Validate()
}

// ApplyPatch applies an RFC 7386 JSON merge patch to the configuration.
func (cfg Configuration) ApplyPatch(patch []byte) (Configuration, error) {
	if len(patch) == 0 {
		return cfg, nil
	}

	doc, err := json.Marshal(cfg)
	if err != nil {
		return cfg, err
	}

	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return cfg, fmt.Errorf("%w: invalid configuration patch: %v", ErrArgument, err)
	}

	var res Configuration
	if err := json.Unmarshal(merged, &res); err != nil {
		return cfg, fmt.Errorf("%w: invalid configuration patch: %v", ErrArgument, err)
	}

	return res, res.Validate()
}

func (cfg Configuration) Validate() error {
	if cfg.Format != FormatPlain && cfg.Format != FormatJSON {
		return fmt.Errorf("%w: invalid format %q, must be one of [plain, json]", ErrArgument, cfg.Format)
	}

	if cfg.Classifier != ClassifierStanford && cfg.Classifier != ClassifierProse {
		return fmt.Errorf("%w: invalid classifier %q, must be one of [stanford, prose]", ErrArgument, cfg.Classifier)
	}

	return nil
}
