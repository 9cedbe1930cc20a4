package substrata

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/substrata-tokens/substrata/internal/tokens"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Generate is the main entry point: it aggregates the tokens directory and
// writes the merged tree to config.Output. Nothing is written when
// aggregation fails.
func Generate(config Config) (*GenerateResult, error) {
	log := config.logger()

	// 1. Scan + parse + merge
	tree, files, err := Aggregate(config)
	if err != nil {
		return nil, err
	}

	// 2. Write JSON
	if err := WriteTokens(tree, config.Output); err != nil {
		return nil, err
	}

	result := &GenerateResult{
		OutputPath:      config.Output,
		FilesScanned:    len(files),
		TokensGenerated: tree.CountLeaves(),
		Files:           files,
		Tokens:          tree,
	}
	log.Info("generated tokens",
		"output", result.OutputPath,
		"files", result.FilesScanned,
		"tokens", result.TokensGenerated)

	return result, nil
}

// Aggregate reads every token stylesheet directly inside config.TokensDir and
// deep-merges them, in lexical file order, into one tree.
func Aggregate(config Config) (*Node, []string, error) {
	log := config.logger()

	files, err := scanTokenFiles(config.TokensDir, config.includes(), config.Excludes)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("scanned tokens directory", "dir", config.TokensDir, "files", len(files))

	tree := tokens.NewTree()
	for _, file := range files {
		fileTree, err := parseFile(file, config)
		if err != nil {
			return nil, nil, err
		}

		if err := tokens.Merge(tree, fileTree, config.Strict); err != nil {
			return nil, nil, withFile(err, file)
		}
	}

	return tree, files, nil
}

// parseFile reads and parses a single token stylesheet, consulting the cache
// when one is configured.
func parseFile(path string, config Config) (*Node, error) {
	log := config.logger()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if tree, ok := config.Cache.get(path, info, config.Strict); ok {
		log.Debug("parse cache hit", "file", path)
		return tree, nil
	}

	// #nosec G304 - path comes from the configured tokens directory
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	category := tokens.CategorizeFile(path)
	tree, err := tokens.ParseTokens(string(content), tokens.ParseOptions{
		Category: category,
		Strict:   config.Strict,
	})
	if err != nil {
		return nil, withFile(err, path)
	}
	log.Debug("parsed token file",
		"file", path,
		"category", string(category),
		"tokens", tree.CountLeaves())

	config.Cache.put(path, info, config.Strict, tree)
	return tree, nil
}

// withFile attaches the source file name to collision errors.
func withFile(err error, path string) error {
	var collision *tokens.CollisionError
	if errors.As(err, &collision) && collision.File == "" {
		collision.File = filepath.Base(path)
	}
	return err
}
