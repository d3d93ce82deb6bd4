package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mortea15/juicer/types"
)

type options struct {
	infile      string
	stdin       bool
	all         bool
	ner         bool
	whitelist   bool
	stem        bool
	process     bool
	extract     bool
	stanford    bool
	removeStops bool
	lemmatize   bool
	speechTag   bool
	outfile     string
	format      string
	check       bool
	verbose     int
	logFile     bool
	html        bool
	configPath  string
	configPatch string
	classifier  string
	publish     bool
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	deps   dependencies
	opts   options
	// logged is set once a failure went through the logger.
	logged bool
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "juicer (-f FILE | -s) [action] [flags]",
		Short: "Extract named entities from plain text",
		Long: `juicer tokenizes a text, removes stopwords, tags parts of speech and
normalizes the remaining words. The result is printed as is, or passed to a
chunker or a named entity classifier to extract entities.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected arguments %v", types.ErrArgument, args)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", types.ErrArgument, err)
	})

	o := &a.opts
	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVarP(&o.infile, "infile", "f", "", "read input from `FILE`")
	flags.BoolVarP(&o.stdin, "stdin", "s", false, "read input from standard input")

	flags.BoolVarP(&o.process, "process", "p", false, "remove stopwords, tag and normalize")
	flags.BoolVarP(&o.extract, "extract", "e", false, "process, then extract entities with the chunker")
	flags.BoolVarP(&o.stanford, "stanford", "n", false, "process, then extract entities with the classifier")
	flags.BoolVarP(&o.removeStops, "remove-stops", "r", false, "only remove stopwords")
	flags.BoolVarP(&o.lemmatize, "lemmatize", "l", false, "only normalize, keeping stopwords")
	flags.BoolVarP(&o.speechTag, "speech-tag", "t", false, "only tag parts of speech")
	flags.BoolVarP(&o.check, "check", "c", false, "verify and download linguistic resources")

	flags.BoolVarP(&o.all, "all", "a", false, "keep tokens outside any entity")
	flags.BoolVarP(&o.ner, "ner", "N", false, "make --process run the classifier")
	flags.BoolVarP(&o.whitelist, "whitelist", "w", false, "keep only nouns and verbs")
	flags.BoolVarP(&o.stem, "stem", "S", false, "stem instead of lemmatizing")
	flags.StringVar(&o.classifier, "classifier", types.ClassifierStanford, "classifier backend: stanford or prose")
	flags.BoolVar(&o.html, "html", false, "extract the text of an HTML input first")

	flags.StringVarP(&o.outfile, "outfile", "o", "", "write output to `OUT`.txt or OUT.json")
	flags.StringVarP(&o.format, "format", "d", types.FormatPlain, "output format: plain or json")
	flags.BoolVar(&o.publish, "publish", false, "publish the JSON response to the message broker")

	flags.StringVar(&o.configPath, "config", "", "YAML pipeline configuration `FILE`")
	flags.StringVar(&o.configPatch, "config-patch", "", "JSON merge patch applied over the configuration")
	flags.CountVarP(&o.verbose, "verbose", "v", "increase verbosity, up to -vv")
	flags.BoolVar(&o.logFile, "log-file", false, "also append logs to the log file")

	return cmd
}

// action resolves the action flags. An empty action means none was given.
func (o options) action() (string, error) {
	var actions []string
	add := func(set bool, action string) {
		if set {
			actions = append(actions, action)
		}
	}
	if o.process && o.ner {
		add(true, types.ActionProcessWithNER)
	} else {
		add(o.process, types.ActionProcess)
	}
	add(o.extract, types.ActionExtract)
	add(o.stanford, types.ActionStanford)
	add(o.removeStops, types.ActionRemoveStops)
	add(o.lemmatize, types.ActionLemmatize)
	add(o.speechTag, types.ActionSpeechTag)

	switch len(actions) {
	case 0:
		return "", nil
	case 1:
		return actions[0], nil
	default:
		return "", fmt.Errorf("%w: only one action may be given, got %v", types.ErrArgument, actions)
	}
}
