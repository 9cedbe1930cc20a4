package substrata

import (
	"errors"
	"log/slog"
	"time"
)

// Error conditions surfaced by Generate
var (
	ErrDirectoryNotFound = errors.New("tokens directory not found")
	ErrNotADirectory     = errors.New("tokens path is not a directory")
	ErrSerialization     = errors.New("writing tokens failed")
)

// DefaultIncludes selects the stylesheets read from the tokens directory
var DefaultIncludes = []string{"*.css"}

const defaultDebounce = 200 * time.Millisecond

// Config holds generator configuration
type Config struct {
	TokensDir string       // "/project/src/tokens" (resolved, not searched for)
	Output    string       // "/project/tokens.json"
	Includes  []string     // name patterns, ["*.css"] when empty
	Excludes  []string     // gitignore-style patterns for names to skip
	Strict    bool         // Fail on token/group collisions instead of overwriting
	Logger    *slog.Logger // Debug/info events; discarded when nil
	Cache     *FileCache   // Optional parse cache, reused between runs
	Debounce  time.Duration
}

// GenerateResult contains generation stats
type GenerateResult struct {
	OutputPath      string
	FilesScanned    int
	TokensGenerated int
	Files           []string // processed files, in merge order
	Tokens          *Node
}

func (c Config) includes() []string {
	if len(c.Includes) == 0 {
		return DefaultIncludes
	}
	return c.Includes
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return discardLogger
	}
	return c.Logger
}

func (c Config) debounce() time.Duration {
	if c.Debounce <= 0 {
		return defaultDebounce
	}
	return c.Debounce
}
