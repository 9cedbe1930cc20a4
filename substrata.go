// Package substrata builds a nested design-token document from CSS custom
// property declarations.
//
// Every `--name: value;` line in the token stylesheets becomes a leaf in a
// tree keyed by the hyphen-separated segments of its name, stamped with a
// category inferred from the file name:
//
//	--color-brand-500: #3b82f6;   (in colors.css)
//
// becomes
//
//	{ "color": { "brand": { "500": { "value": "#3b82f6", "type": "color", "originalVariable": "--color-brand-500" } } } }
//
// # Generation
//
//	result, err := substrata.Generate(substrata.Config{
//		TokensDir: "/abs/src/tokens",
//		Output:    "/abs/tokens.json",
//	})
//
// Files are processed in lexical order and deep-merged, so groups spread over
// several files combine while a later file wins wherever the shapes disagree.
// Set Config.Strict to reject those disagreements instead.
//
// # CLI Tool
//
//	go install github.com/substrata-tokens/substrata/cmd/substrata@latest
package substrata

import "github.com/substrata-tokens/substrata/internal/tokens"

// Aliases for the token tree types returned by Generate and Aggregate.
type (
	Node     = tokens.Node
	Leaf     = tokens.Leaf
	Category = tokens.Category

	CollisionError = tokens.CollisionError
)

// ErrCollision is returned (wrapped in a *CollisionError) in strict mode.
var ErrCollision = tokens.ErrCollision

// Token categories, inferred from the source file name
const (
	CategoryColor      = tokens.CategoryColor
	CategorySpacing    = tokens.CategorySpacing
	CategoryTypography = tokens.CategoryTypography
	CategoryRadius     = tokens.CategoryRadius
	CategoryBorder     = tokens.CategoryBorder
	CategoryElevation  = tokens.CategoryElevation
	CategoryMotion     = tokens.CategoryMotion
	CategoryOpacity    = tokens.CategoryOpacity
	CategoryBreakpoint = tokens.CategoryBreakpoint
	CategorySemantic   = tokens.CategorySemantic
	CategoryUnknown    = tokens.CategoryUnknown
)
