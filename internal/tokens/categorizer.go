package tokens

import (
	"path/filepath"
	"strings"
)

type categoryKeyword struct {
	keyword  string
	category Category
}

// categoryKeywords is checked in order; the first keyword found in the file
// name decides the category.
var categoryKeywords = []categoryKeyword{
	{"color", CategoryColor},
	{"spacing", CategorySpacing},
	{"typography", CategoryTypography},
	{"radius", CategoryRadius},
	{"border", CategoryBorder},
	{"elevation", CategoryElevation},
	{"shadow", CategoryElevation},
	{"motion", CategoryMotion},
	{"opacity", CategoryOpacity},
	{"breakpoint", CategoryBreakpoint},
	{"semantic", CategorySemantic},
}

// CategorizeFile infers the token category from a file name (case-insensitive).
// Only the base name is considered; the file content is never inspected.
func CategorizeFile(filename string) Category {
	name := strings.ToLower(filepath.Base(filename))
	for _, ck := range categoryKeywords {
		if strings.Contains(name, ck.keyword) {
			return ck.category
		}
	}
	return CategoryUnknown
}

// Categories returns every label CategorizeFile can produce, fallback last.
func Categories() []Category {
	seen := make(map[Category]bool)
	out := make([]Category, 0, len(categoryKeywords)+1)
	for _, ck := range categoryKeywords {
		if !seen[ck.category] {
			seen[ck.category] = true
			out = append(out, ck.category)
		}
	}
	return append(out, CategoryUnknown)
}
