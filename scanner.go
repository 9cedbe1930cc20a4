package substrata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// scanTokenFiles lists the files directly inside dir whose names match one of
// includes and none of excludes. Subdirectories are not descended into.
// The result is sorted so merge order does not depend on the filesystem.
func scanTokenFiles(dir string, includes, excludes []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	excluded := compileExcludes(excludes)

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isTokenFile(name, includes, excluded) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)
	return files, nil
}

// isTokenFile checks a bare file name against the include and exclude patterns
func isTokenFile(name string, includes []string, excluded *ignore.GitIgnore) bool {
	if excluded != nil && excluded.MatchesPath(name) {
		return false
	}
	for _, pattern := range includes {
		// Bad patterns are caught by ValidatePatterns; here they never match
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func compileExcludes(excludes []string) *ignore.GitIgnore {
	if len(excludes) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(excludes...)
}

// ValidatePatterns reports the first malformed include pattern.
func ValidatePatterns(includes []string) error {
	for _, pattern := range includes {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	return nil
}
