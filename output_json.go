package substrata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EncodeTokens writes the tree as two-space indented JSON
func EncodeTokens(w io.Writer, tree *Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(tree)
}

// WriteTokens serializes tree to outputFile, creating parent directories as
// needed. The document goes to a temp file next to the target and is renamed
// over it, so a failed write leaves any previous file intact.
func WriteTokens(tree *Node, outputFile string) error {
	var buf bytes.Buffer
	if err := EncodeTokens(&buf, tree); err != nil {
		return fmt.Errorf("%w: encode: %w", ErrSerialization, err)
	}

	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrSerialization, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tokens-*.json.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", ErrSerialization, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %w", ErrSerialization, tmpName, err)
	}
	// CreateTemp uses 0600
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod %s: %w", ErrSerialization, tmpName, err)
	}
	if err := os.Rename(tmpName, outputFile); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename to %s: %w", ErrSerialization, outputFile, err)
	}

	return nil
}
