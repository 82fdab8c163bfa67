package props

import (
	"strings"
	"unicode/utf8"
)

// Anomaly is a script line the parser could not use. The default
// parse drops these silently; ParseReport surfaces them for hosts
// that opt in to strict diagnostics.
type Anomaly struct {
	Line int
	Text string
}

// Parse turns property script text into a tree. It never fails:
// blank lines, comments and malformed lines are skipped.
func Parse(src string) *Tree {
	tree, _ := ParseReport(src)
	return tree
}

// ParseReport parses like Parse and additionally reports one anomaly
// per malformed line. The resulting tree is identical to Parse's.
func ParseReport(src string) (*Tree, []Anomaly) {
	tree := NewTree()
	var anomalies []Anomaly

	for n, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		keyPath, rawValue, found := strings.Cut(line, "=")
		if !found {
			anomalies = append(anomalies, Anomaly{Line: n + 1, Text: line})
			continue
		}
		keyPath = strings.TrimSpace(keyPath)
		if keyPath == "" {
			anomalies = append(anomalies, Anomaly{Line: n + 1, Text: line})
			continue
		}

		segments := strings.Split(keyPath, ".")
		ok := true
		for _, segment := range segments {
			if segment == "" {
				ok = false
				break
			}
		}
		if !ok {
			anomalies = append(anomalies, Anomaly{Line: n + 1, Text: line})
			continue
		}

		node := tree
		for _, segment := range segments[:len(segments)-1] {
			sub, ok := node.Sub(segment)
			if !ok {
				// a non-tree value at this path is overwritten
				sub = NewTree()
				node.Set(segment, sub)
			}
			node = sub
		}
		node.Set(segments[len(segments)-1], Str(unquote(rawValue)))
	}

	return tree, anomalies
}

var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'“':  '”',
	'‘':  '’',
}

// unquote strips one matching pair of surrounding straight or curly
// quotes, then trims.
func unquote(str string) string {
	str = strings.TrimSpace(str)

	first, firstSize := utf8.DecodeRuneInString(str)
	closing, ok := quotePairs[first]
	if !ok {
		return str
	}
	last, lastSize := utf8.DecodeLastRuneInString(str)
	if last != closing || len(str) < firstSize+lastSize {
		return str
	}

	return strings.TrimSpace(str[firstSize : len(str)-lastSize])
}
