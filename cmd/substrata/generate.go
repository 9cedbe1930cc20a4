package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/substrata-tokens/substrata"
	"github.com/substrata-tokens/substrata/internal/report"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "build"},
	Short:   "Generate tokens.json from CSS custom properties",
	Long: `Read every token stylesheet directly inside the tokens directory, in
lexical order, and merge their custom properties into one JSON document.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	// The root command runs generate as well, so it takes the same flags.
	addGenerateFlags(rootCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("tokens", defaultTokensDir, "Directory containing token stylesheets")
	f.String("output", defaultOutputFile, "Destination JSON file")
	f.StringSlice("include", nil, "Name patterns for token files (default *.css)")
	f.StringSlice("exclude", nil, "Gitignore-style patterns for files to skip")
	f.Bool("strict", false, "Fail when a name is both a token and a group")
	f.BoolP("watch", "w", false, "Regenerate whenever a token file changes")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	quiet := getBoolWithDefault("quiet", false)
	verbose := getBoolWithDefault("verbose", false)
	reporter := report.NewReporter(cmd.OutOrStdout(), getBoolWithDefault("color", false))

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errReporter := report.NewReporter(cmd.ErrOrStderr(), getBoolWithDefault("color", false))
		if !quiet {
			reporter.PrintWatching(config.TokensDir, config.Includes)
		}
		return substrata.Watch(ctx, config, func(result *substrata.GenerateResult, err error) {
			if err != nil {
				errReporter.PrintError(err)
				return
			}
			if !quiet {
				reporter.PrintGenerated(result)
			}
		})
	}

	result, err := substrata.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !quiet {
		reporter.PrintGenerated(result)
		if verbose {
			reporter.PrintFiles(result)
		}
	}

	return nil
}
