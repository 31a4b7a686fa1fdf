package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"horsebat/internal/config"
	"horsebat/internal/generate"
	"horsebat/internal/logging"
)

const description = "Loads random words from a source file (one word per line), " +
	"slugifies each, maybe changes the case and glues them together."

type rootOptions struct {
	configPath string
	initConfig bool
	stats      bool

	caseValue      *choiceValue
	firstCaseValue *choiceValue
	logLevelValue  *choiceValue
	separator      string
	slugSeparator  string
	minLength      int
	maxLength      int
	wordCount      int
	noRandom       bool
	noUnique       bool
}

func newRootCommand() *cobra.Command {
	defaults := config.Default()
	opts := &rootOptions{
		caseValue:      newChoiceValue(defaults.Cleanup.Case, config.CaseChoices),
		firstCaseValue: newChoiceValue(defaults.Cleanup.FirstCase, config.FirstCaseChoices),
		logLevelValue:  newChoiceValue(defaults.Logging.Level, config.LogLevelChoices),
	}

	rootCmd := &cobra.Command{
		Use:           "horsebat [filename]",
		Short:         "Generate memorable passwords from a word list",
		Long:          description,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.initConfig {
				return opts.writeSampleConfig(cmd)
			}
			return opts.generate(cmd, args)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		// Flags are parsed left to right, so --version is only set here when it
		// came before the offending flag; it wins then.
		if shown, _ := c.Flags().GetBool("version"); shown {
			fmt.Fprintln(c.OutOrStdout(), c.Version)
			return nil
		}
		return &usageError{err: err}
	})

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.Bool("version", false, "print version and exit")

	flags.VarP(opts.caseValue, "case", "c", "convert words to `CASE`: upper, lower, title or unchanged")
	flags.VarP(opts.firstCaseValue, "first-case", "C", "convert the 1st char to `CASE`: upper, lower or unchanged")
	flags.StringVarP(&opts.separator, "separator", "s", defaults.Cleanup.Separator, "separate cleaned words with `SEP`")
	flags.StringVarP(&opts.slugSeparator, "slug-separator", "S", defaults.Cleanup.SlugSeparator, "`SEP` used inside a word when slugifying")

	flags.IntVarP(&opts.minLength, "min-length", "m", defaults.Selection.MinLength, "words need to be at least this long (0 disables)")
	flags.IntVarP(&opts.maxLength, "max-length", "M", defaults.Selection.MaxLength, "words can be only this long (0 disables)")
	flags.BoolVarP(&opts.noRandom, "no-random", "r", false, "don't select words at random")
	flags.BoolVarP(&opts.noUnique, "no-unique", "u", false, "might use the same word more than once")
	flags.IntVarP(&opts.wordCount, "word-count", "w", defaults.Selection.WordCount, "glue this many words together")

	flags.StringVar(&opts.configPath, "config", "", "configuration file `PATH` (default ~/.config/horsebat/config.toml)")
	flags.BoolVar(&opts.initConfig, "init-config", false, "write a sample configuration file and exit")
	flags.BoolVar(&opts.stats, "stats", false, "print a word selection summary to stderr")
	flags.Var(opts.logLevelValue, "log-level", "diagnostic `LEVEL` on stderr: debug, info, warn or error")

	return rootCmd
}

func (o *rootOptions) generate(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolveConfig(cmd.Flags(), args)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	logger, err := logging.NewFromConfig(cfg, stderr)
	if err != nil {
		return err
	}

	res, err := generate.Run(cmd.Context(), generate.OptionsFromConfig(cfg), logger)
	if o.stats && res.Loaded {
		fmt.Fprintln(stderr, renderStats(res, shouldColorize(stderr)))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Password)
	return nil
}

// resolveConfig layers explicitly set flags and the positional word list over
// the loaded configuration. Every failure here is a configuration error and
// carries the usage text.
func (o *rootOptions) resolveConfig(flags *pflag.FlagSet, args []string) (*config.Config, error) {
	cfg, _, _, err := config.Load(o.configPath)
	if err != nil {
		return nil, &usageError{err: err}
	}

	if flags.Changed("case") {
		cfg.Cleanup.Case = o.caseValue.String()
	}
	if flags.Changed("first-case") {
		cfg.Cleanup.FirstCase = o.firstCaseValue.String()
	}
	if flags.Changed("separator") {
		cfg.Cleanup.Separator = o.separator
	}
	if flags.Changed("slug-separator") {
		cfg.Cleanup.SlugSeparator = o.slugSeparator
	}
	if flags.Changed("min-length") {
		cfg.Selection.MinLength = o.minLength
	}
	if flags.Changed("max-length") {
		cfg.Selection.MaxLength = o.maxLength
	}
	if flags.Changed("no-random") {
		cfg.Selection.Random = !o.noRandom
	}
	if flags.Changed("no-unique") {
		cfg.Selection.Unique = !o.noUnique
	}
	if flags.Changed("word-count") {
		cfg.Selection.WordCount = o.wordCount
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevelValue.String()
	}
	if len(args) == 1 {
		cfg.Wordlist.Path = args[0]
	}

	if err := cfg.Normalize(); err != nil {
		return nil, &usageError{err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &usageError{err: fmt.Errorf("invalid options: %w", err)}
	}
	return cfg, nil
}

func (o *rootOptions) writeSampleConfig(cmd *cobra.Command) error {
	path := strings.TrimSpace(o.configPath)
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	} else {
		var err error
		if path, err = config.ExpandPath(path); err != nil {
			return err
		}
	}
	if err := config.CreateSample(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
	return nil
}
