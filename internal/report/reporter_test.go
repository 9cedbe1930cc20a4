package report

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/substrata-tokens/substrata"
)

func TestPrintGenerated(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintGenerated(&substrata.GenerateResult{
		OutputPath:      "/project/tokens.json",
		FilesScanned:    2,
		TokensGenerated: 7,
	})

	out := buf.String()
	assert.Contains(t, out, "✓ Generated tokens at /project/tokens.json")
	assert.Contains(t, out, "Files scanned: 2")
	assert.Contains(t, out, "Tokens generated: 7")
	assert.NotContains(t, out, "Warning")
}

func TestPrintGenerated_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintGenerated(&substrata.GenerateResult{OutputPath: "/project/tokens.json"})
	assert.Contains(t, buf.String(), "no token files found")
}

func TestPrintFiles(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintFiles(&substrata.GenerateResult{
		Files: []string{"/t/colors.css", "/t/misc.css"},
	})
	assert.Equal(t, "  - colors.css (color)\n  - misc.css (unknown)\n", buf.String())
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{
			name:     "missing directory",
			err:      fmt.Errorf("%w: /nope", substrata.ErrDirectoryNotFound),
			wantHint: "substrata init",
		},
		{
			name:     "collision",
			err:      &substrata.CollisionError{Path: []string{"space"}},
			wantHint: "strict mode",
		},
		{
			name: "other",
			err:  substrata.ErrSerialization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{w: &buf}
			r.PrintError(tt.err)

			out := buf.String()
			assert.Contains(t, out, "✗ "+tt.err.Error())
			if tt.wantHint != "" {
				assert.Contains(t, out, tt.wantHint)
			} else {
				assert.NotContains(t, out, "Hint")
			}
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 pattern", pluralizeCount(1, "pattern", "patterns"))
	assert.Equal(t, "0 patterns", pluralizeCount(0, "pattern", "patterns"))
	assert.Equal(t, "3 patterns", pluralizeCount(3, "pattern", "patterns"))
}
