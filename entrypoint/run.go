package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mortea15/juicer/input"
	"github.com/mortea15/juicer/logger"
	"github.com/mortea15/juicer/ner"
	"github.com/mortea15/juicer/pipeline"
	"github.com/mortea15/juicer/resources"
	"github.com/mortea15/juicer/types"
)

func (a *app) run(cmd *cobra.Command) error {
	env, err := readEnvironment()
	if err != nil {
		return fmt.Errorf("%w: reading environment: %v", types.ErrArgument, err)
	}

	logOpts := logger.Options{Verbosity: a.opts.verbose, Console: a.stderr}
	if a.opts.logFile {
		logOpts.LogFile = env.LogFile
	}
	log, closer, err := logger.New(logOpts)
	if err != nil {
		return fmt.Errorf("%w: opening log file: %v", types.ErrArgument, err)
	}
	defer closer.Close()

	mainLog := logger.Component(log, "Main")
	if err := a.runLogged(cmd, env, log); err != nil {
		mainLog.Error().Err(err).Msg("Failed")
		a.logged = true
		return err
	}
	return nil
}

func (a *app) runLogged(cmd *cobra.Command, env Environment, log zerolog.Logger) error {
	mainLog := logger.Component(log, "Main")

	action, err := a.opts.action()
	if err != nil {
		return err
	}
	if a.opts.infile != "" && a.opts.stdin {
		return fmt.Errorf("%w: --infile and --stdin are mutually exclusive", types.ErrArgument)
	}

	if a.opts.check {
		if err := a.checkResources(env, log); err != nil {
			return err
		}
	}
	if action == "" {
		if !a.opts.check {
			return cmd.Usage()
		}
		return nil
	}

	cfg, err := a.configuration(cmd)
	if err != nil {
		return err
	}

	text, err := a.readInput(cfg)
	if err != nil {
		return err
	}

	var classifier ner.Classifier
	if action == types.ActionStanford || action == types.ActionProcessWithNER {
		var cleanup func()
		classifier, cleanup, err = a.deps.newClassifier(env, cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()
	}

	params, err := pipeline.GetDefaultParams(resources.Open(env.DataPath), cfg, classifier, log)
	if err != nil {
		return err
	}

	mainLog.Info().Str("action", action).Msg("Running")
	resp, err := pipeline.New(params).Run(cmd.Context(), action, text, cfg)
	if err != nil {
		return err
	}

	if err := a.writeOutput(resp, cfg, mainLog); err != nil {
		return err
	}
	if a.opts.publish {
		return a.publish(resp, log)
	}
	return nil
}

// configuration layers the YAML file, the merge patch and the flags over
// the defaults.
func (a *app) configuration(cmd *cobra.Command) (types.Configuration, error) {
	cfg := types.DefaultConfiguration()
	var err error

	if a.opts.configPath != "" {
		if cfg, err = types.LoadConfiguration(a.opts.configPath, cfg); err != nil {
			return cfg, err
		}
	}
	if cfg, err = cfg.ApplyPatch([]byte(a.opts.configPatch)); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if a.opts.all {
		cfg.Named = false
	}
	if a.opts.whitelist {
		cfg.Whitelisted = true
	}
	if a.opts.stem {
		cfg.Stemming = true
	}
	if a.opts.html {
		cfg.HTML = true
	}
	if flags.Changed("format") {
		cfg.Format = a.opts.format
	}
	if flags.Changed("outfile") {
		cfg.Outfile = a.opts.outfile
	}
	if flags.Changed("classifier") {
		cfg.Classifier = a.opts.classifier
	}
	return cfg, cfg.Validate()
}

func (a *app) readInput(cfg types.Configuration) (string, error) {
	var text string
	var err error
	switch {
	case a.opts.infile != "":
		text, err = input.FromFile(a.opts.infile)
	case a.opts.stdin:
		text, err = input.FromReader(a.stdin)
	default:
		return "", fmt.Errorf("%w: no input given, use --infile or --stdin", types.ErrInput)
	}
	if err != nil {
		return "", err
	}

	if cfg.HTML {
		return input.StripHTML(text)
	}
	return text, nil
}

func (a *app) checkResources(env Environment, log zerolog.Logger) error {
	fetcher, err := a.deps.newFetcher(log)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrResourceUnavailable, err)
	}

	checker := resources.NewChecker(env.DataPath, fetcher, logger.Component(log, "Resources"))
	fetched, err := checker.Check()
	for _, name := range fetched {
		log.Info().Str("resource", name).Msg("Resource fetched")
	}
	return err
}

func encodeJSON(resp types.Response) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(resp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *app) writeOutput(resp types.Response, cfg types.Configuration, log zerolog.Logger) error {
	var out []byte
	ext := ".txt"
	if cfg.Format == types.FormatJSON {
		buf, err := encodeJSON(resp)
		if err != nil {
			return err
		}
		out = buf
		ext = ".json"
	} else {
		out = []byte(resp.Text + "\n")
	}

	if cfg.Outfile == "" {
		_, err := a.stdout.Write(out)
		return err
	}

	path := cfg.Outfile + ext
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Info().Str("file", path).Msg("Output written")
	return nil
}

func (a *app) publish(resp types.Response, log zerolog.Logger) error {
	body, err := encodeJSON(resp)
	if err != nil {
		return err
	}

	p, err := a.deps.newPublisher(log)
	if err != nil {
		return fmt.Errorf("publishing: %w", err)
	}
	defer p.Close()

	if err := p.Publish(resp.Id, body); err != nil {
		return fmt.Errorf("publishing: %w", err)
	}
	log.Info().Str("id", resp.Id).Msg("Response published")
	return nil
}
