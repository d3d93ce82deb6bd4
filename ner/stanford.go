package ner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mortea15/juicer/types"
)

const (
	DefaultStanfordPath = "stanford_ner"
	ClassifierModel     = "classifiers/english.all.3class.distsim.crf.ser.gz"
	ClassifierJar       = "stanford-ner.jar"

	crfClassifierMain = "edu.stanford.nlp.ie.crf.CRFClassifier"
)

type StanfordConfig struct {
	// BasePath holds the model and the jar at their fixed relative paths.
	BasePath string
	Java     string
	Heap     string
}

// StanfordClassifier runs the Stanford CRF classifier as a subprocess, once
// per call, and waits for it to exit.
type StanfordClassifier struct {
	modelPath string
	jarPath   string
	java      string
	heap      string
	log       zerolog.Logger
}

func NewStanfordClassifier(cfg StanfordConfig, log zerolog.Logger) *StanfordClassifier {
	base := cfg.BasePath
	if base == "" {
		base = DefaultStanfordPath
	}
	java := cfg.Java
	if java == "" {
		java = "java"
	}
	heap := cfg.Heap
	if heap == "" {
		heap = "1000m"
	}

	return &StanfordClassifier{
		modelPath: filepath.Join(base, ClassifierModel),
		jarPath:   filepath.Join(base, ClassifierJar),
		java:      java,
		heap:      heap,
		log:       log,
	}
}

func (s *StanfordClassifier) Name() string {
	return types.ClassifierStanford
}

// CheckArtifacts reports a missing model or jar.
func (s *StanfordClassifier) CheckArtifacts() error {
	for _, p := range []string{s.modelPath, s.jarPath} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("%w: stanford ner: %v", types.ErrExternalToolUnavailable, err)
		}
	}
	return nil
}

func (s *StanfordClassifier) Classify(ctx context.Context, tokens []string) ([]types.LabeledToken, error) {
	if err := s.CheckArtifacts(); err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return []types.LabeledToken{}, nil
	}

	input, err := os.CreateTemp("", "juicer-ner-*.txt")
	if err != nil {
		return nil, err
	}
	defer os.Remove(input.Name())

	_, err = input.WriteString(strings.Join(tokens, " "))
	if closeErr := input.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.java, s.args(input.Name())...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.log.Debug().Str("command", cmd.String()).Msg("Running Stanford NER")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: stanford ner: %v: %s", types.ErrExternalToolUnavailable, err, strings.TrimSpace(stderr.String()))
	}

	labeled := ParseSlashTags(stdout.String())
	if len(labeled) != len(tokens) {
		return nil, fmt.Errorf("%w: stanford ner: %d labels for %d tokens",
			types.ErrExternalToolUnavailable, len(labeled), len(tokens))
	}
	return labeled, nil
}

func (s *StanfordClassifier) args(inputPath string) []string {
	return []string{
		"-mx" + s.heap,
		"-cp", s.jarPath,
		crfClassifierMain,
		"-loadClassifier", s.modelPath,
		"-textFile", inputPath,
		"-outputFormat", "slashTags",
		"-tokenizerFactory", "edu.stanford.nlp.process.WhitespaceTokenizer",
		"-tokenizerOptions", "tokenizeNLs=false",
		"-encoding", "utf8",
	}
}

// ParseSlashTags reads "token/LABEL" groups separated by whitespace. The
// label is taken after the last slash so tokens may contain slashes.
func ParseSlashTags(out string) []types.LabeledToken {
	res := make([]types.LabeledToken, 0)
	for _, field := range strings.Fields(out) {
		idx := strings.LastIndex(field, "/")
		if idx <= 0 || idx == len(field)-1 {
			res = append(res, types.LabeledToken{Text: field, Label: types.OutsideLabel})
			continue
		}
		res = append(res, types.LabeledToken{Text: field[:idx], Label: field[idx+1:]})
	}
	return res
}
