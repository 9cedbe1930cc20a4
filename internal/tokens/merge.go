package tokens

// Merge deep-merges src into dst. Groups present on both sides are combined
// key by key; anywhere the shapes disagree the src side replaces dst outright,
// including everything dst had nested there. src is never modified and dst
// never shares containers with it, so cached trees can be merged repeatedly.
//
// In strict mode a token/group disagreement returns a *CollisionError and dst
// may be left partially merged.
func Merge(dst, src *Node, strict bool) error {
	return mergeAt(dst, src, nil, strict)
}

func mergeAt(dst, src *Node, path []string, strict bool) error {
	for _, key := range src.Keys() {
		srcVal, _ := src.Child(key)
		dstVal, exists := dst.Child(key)
		keyPath := append(path[:len(path):len(path)], key)

		if !srcVal.IsLeaf() {
			if !exists || dstVal.IsLeaf() {
				if exists && strict {
					return &CollisionError{Path: keyPath}
				}
				dstVal = NewTree()
				dst.Set(key, dstVal)
			}
			if err := mergeAt(dstVal, srcVal, keyPath, strict); err != nil {
				return err
			}
			continue
		}

		if exists && !dstVal.IsLeaf() && strict {
			return &CollisionError{Path: keyPath}
		}
		dst.Set(key, srcVal)
	}
	return nil
}
