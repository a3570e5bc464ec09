package scored

// DefaultAncestorLevels bounds Ancestors when callers have no preference.
const DefaultAncestorLevels = 3

// Ancestors walks up from n and returns at most maxLevels ancestors,
// nearest first. It stops early at the root. A maxLevels of zero or less
// walks all the way up.
func (n Node) Ancestors(maxLevels int) []Node {
	var out []Node
	cur := n
	for maxLevels <= 0 || len(out) < maxLevels {
		p, ok := cur.Parent()
		if !ok {
			break
		}
		out = append(out, p)
		cur = p
	}
	return out
}
