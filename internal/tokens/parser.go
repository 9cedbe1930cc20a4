package tokens

import (
	"regexp"
	"strings"
)

// declarationPattern matches one single-line custom property declaration.
// Only the first declaration on a line is picked up; values spanning lines
// never match.
var declarationPattern = regexp.MustCompile(`--([\w-]+):\s*([^;]+);`)

// Declaration is a raw name/value pair as it appears in the stylesheet
type Declaration struct {
	Name  string // "color-neutral-100" (without the leading --)
	Value string // untrimmed right-hand side
	Line  int    // 1-based
}

// ExtractDeclarations returns every custom property declaration in content,
// in source order. Lines that do not match are skipped silently.
func ExtractDeclarations(content string) []Declaration {
	var decls []Declaration
	for i, line := range strings.Split(content, "\n") {
		match := declarationPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		decls = append(decls, Declaration{
			Name:  match[1],
			Value: match[2],
			Line:  i + 1,
		})
	}
	return decls
}

// ParseOptions controls how declarations are turned into a tree
type ParseOptions struct {
	Category Category // stamped onto every leaf
	Strict   bool     // fail on token/group collisions instead of overwriting
}

// ParseTokens extracts declarations from content and builds the per-file tree.
// A later declaration wins over an earlier one at the same path.
func ParseTokens(content string, opts ParseOptions) (*Node, error) {
	tree := NewTree()
	for _, decl := range ExtractDeclarations(content) {
		leaf := NewLeaf(Leaf{
			Value:            strings.TrimSpace(decl.Value),
			Type:             opts.Category,
			OriginalVariable: "--" + decl.Name,
		})
		if err := SetPath(tree, SplitName(decl.Name), leaf, opts.Strict); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// SplitName splits a variable name into its path segments.
// "color-brand-500" -> ["color", "brand", "500"]
func SplitName(name string) []string {
	return strings.Split(name, "-")
}

// SetPath places value at path below tree, creating containers along the way.
// Any leaf occupying an intermediate position is replaced by a container.
// In strict mode a leaf/container disagreement returns a *CollisionError instead.
func SetPath(tree *Node, path []string, value *Node, strict bool) error {
	if len(path) == 0 {
		return nil
	}

	current := tree
	for i, segment := range path[:len(path)-1] {
		next, ok := current.Child(segment)
		if !ok || next.IsLeaf() {
			if ok && strict {
				return &CollisionError{Path: copyPath(path[:i+1])}
			}
			next = NewTree()
			current.Set(segment, next)
		}
		current = next
	}

	last := path[len(path)-1]
	if strict {
		if existing, ok := current.Child(last); ok && existing.IsLeaf() != value.IsLeaf() {
			return &CollisionError{Path: copyPath(path)}
		}
	}
	current.Set(last, value)
	return nil
}

func copyPath(path []string) []string {
	out := make([]string, len(path))
	copy(out, path)
	return out
}
