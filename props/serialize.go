package props

import "strings"

// Serialize renders a tree in the assignment grammar, one line per
// leaf, nested keys joined with dots. Ordering follows insertion
// order. Embedded quote characters are not escaped.
func Serialize(tree *Tree) string {
	var sb strings.Builder
	serializeInto(&sb, "", tree)
	return sb.String()
}

func serializeInto(sb *strings.Builder, prefix string, tree *Tree) {
	for key, value := range tree.All() {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch value := value.(type) {
		case Str:
			sb.WriteString(path)
			sb.WriteString(` = "`)
			sb.WriteString(string(value))
			sb.WriteString("\"\n")
		case *Tree:
			serializeInto(sb, path, value)
		}
	}
}
