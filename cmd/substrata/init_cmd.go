package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a .substrata.yaml config and sample token files",
	Long: `Create a .substrata.yaml configuration file and a src/tokens directory
with sample colors.css and spacing.css in the current directory.
Existing sample files are never overwritten.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		return initProject(cwd, force, cmd.OutOrStdout())
	},
}

const defaultConfig = `# substrata configuration

# Directory holding the token stylesheets (not searched recursively)
tokens: ./src/tokens

# Generated JSON document
output: ./tokens.json

# File name patterns read from the tokens directory
include:
  - "*.css"

# Gitignore-style patterns for files to skip
# exclude:
#   - "*.draft.css"

# Fail when a name is used both as a token and as a group
strict: false
`

const sampleColors = `:root {
  /* Brand */
  --brand-500: #3b82f6;
  --brand-700: #1d4ed8;

  /* Neutrals */
  --neutral-0: #ffffff;
  --neutral-900: #0f172a;
}
`

const sampleSpacing = `:root {
  --space-1: 0.25rem;
  --space-2: 0.5rem;
  --space-3: 0.75rem;
  --space-4: 1rem;
}
`

// initProject writes the config file and sample tokens under dir.
func initProject(dir string, force bool, w io.Writer) error {
	configPath := filepath.Join(dir, defaultConfigFile)
	if exists(configPath) && !force {
		fmt.Fprintf(w, "%s already exists (use --force to overwrite)\n", defaultConfigFile)
	} else {
		if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
		fmt.Fprintf(w, "Created %s\n", defaultConfigFile)
	}

	tokensDir := filepath.Join(dir, "src", "tokens")
	if !exists(tokensDir) {
		if err := os.MkdirAll(tokensDir, 0o755); err != nil {
			return fmt.Errorf("creating tokens directory: %w", err)
		}
		fmt.Fprintln(w, "Created src/tokens")
	}

	samples := []struct {
		name    string
		content string
	}{
		{"colors.css", sampleColors},
		{"spacing.css", sampleSpacing},
	}
	for _, sample := range samples {
		path := filepath.Join(tokensDir, sample.name)
		if exists(path) {
			continue
		}
		if err := os.WriteFile(path, []byte(sample.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", sample.name, err)
		}
		fmt.Fprintf(w, "Created src/tokens/%s (sample)\n", sample.name)
	}

	fmt.Fprintln(w, `Run "substrata generate" to build your tokens.`)
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
