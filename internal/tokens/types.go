package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Category is the coarse label stamped onto every token parsed from a file
type Category string

// Token categories, inferred from the source file name
const (
	CategoryColor      Category = "color"
	CategorySpacing    Category = "spacing"
	CategoryTypography Category = "typography"
	CategoryRadius     Category = "radius"
	CategoryBorder     Category = "border"
	CategoryElevation  Category = "elevation"
	CategoryMotion     Category = "motion"
	CategoryOpacity    Category = "opacity"
	CategoryBreakpoint Category = "breakpoint"
	CategorySemantic   Category = "semantic"
	CategoryUnknown    Category = "unknown"
)

// Leaf is a single design token as written to tokens.json
type Leaf struct {
	Value            string   `json:"value"`            // "#3b82f6" (trimmed, never coerced)
	Type             Category `json:"type"`             // "color"
	OriginalVariable string   `json:"originalVariable"` // "--color-brand-500"
}

// Node is either a token leaf or a container of named child nodes.
// Children keep insertion order so the serialized document is diff-friendly.
type Node struct {
	leaf     *Leaf
	children *orderedmap.OrderedMap[string, *Node]
}

// NewTree returns an empty container node.
func NewTree() *Node {
	return &Node{children: orderedmap.New[string, *Node]()}
}

// NewLeaf wraps a token leaf in a node.
func NewLeaf(leaf Leaf) *Node {
	return &Node{leaf: &leaf}
}

// IsLeaf reports whether the node holds a token rather than children.
func (n *Node) IsLeaf() bool {
	return n != nil && n.leaf != nil
}

// Leaf returns the token held by a leaf node, or nil for containers.
func (n *Node) Leaf() *Leaf {
	if n == nil {
		return nil
	}
	return n.leaf
}

// Child returns the direct child stored under key.
func (n *Node) Child(key string) (*Node, bool) {
	if n == nil || n.children == nil {
		return nil, false
	}
	return n.children.Get(key)
}

// Set stores child under key. Replacing an existing key keeps its position.
func (n *Node) Set(key string, child *Node) {
	n.children.Set(key, child)
}

// Keys returns child keys in insertion order.
func (n *Node) Keys() []string {
	if n == nil || n.children == nil {
		return nil
	}
	keys := make([]string, 0, n.children.Len())
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	if n == nil || n.children == nil {
		return 0
	}
	return n.children.Len()
}

// Lookup walks path segments from n and returns the node found there.
func (n *Node) Lookup(path ...string) (*Node, bool) {
	current := n
	for _, segment := range path {
		next, ok := current.Child(segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, current != nil
}

// CountLeaves returns the number of tokens below n.
func (n *Node) CountLeaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	count := 0
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		count += pair.Value.CountLeaves()
	}
	return count
}

// MarshalJSON renders leaves as {value,type,originalVariable} and containers
// as objects in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsLeaf() {
		return json.Marshal(n.leaf)
	}
	if n == nil || n.children == nil {
		return []byte("{}"), nil
	}
	return n.children.MarshalJSON()
}

// ErrCollision signals a leaf/container disagreement at the same path in strict mode.
var ErrCollision = errors.New("token path collision")

// CollisionError names the path where one declaration wanted a token and
// another wanted a group.
type CollisionError struct {
	Path []string
	File string // file whose tokens hit the collision, if known
}

func (e *CollisionError) Error() string {
	path := strings.Join(e.Path, ".")
	if e.File != "" {
		return fmt.Sprintf("%s: %q in %s: token and group share the same path", ErrCollision, path, e.File)
	}
	return fmt.Sprintf("%s: %q: token and group share the same path", ErrCollision, path)
}

// Unwrap lets errors.Is match ErrCollision.
func (e *CollisionError) Unwrap() error {
	return ErrCollision
}
