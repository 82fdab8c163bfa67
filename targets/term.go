package targets

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Term renders the artifact as a text box on a terminal. Styling is
// applied with ANSI escapes only when out is a terminal.
type Term struct {
	out     *os.File
	created bool
	id      string
	text    string
	styles  map[string]string
}

var _ Target = new(Term)

func NewTerm(out *os.File) *Term {
	return &Term{
		out:    out,
		styles: make(map[string]string),
	}
}

func (t *Term) Create(ctx context.Context) error {
	t.created = true
	return nil
}

func (t *Term) SetID(id string) {
	t.id = id
}

func (t *Term) SetText(text string) {
	t.text = text
}

func (t *Term) SetStyle(name string, value string) {
	t.styles[name] = value
}

var bgColors = map[string]string{
	"black":   "40",
	"red":     "41",
	"green":   "42",
	"yellow":  "43",
	"blue":    "44",
	"magenta": "45",
	"cyan":    "46",
	"white":   "47",
}

// Draw writes the current state of the box. Callers redraw after
// each engine render pass.
func (t *Term) Draw() {
	if !t.created {
		return
	}

	width := len(t.text) + 4
	if w := pxToColumns(t.styles["width"]); w > width {
		width = w
	}

	fd := int(t.out.Fd())
	isTerminal := term.IsTerminal(fd)
	if isTerminal {
		if cols, _, err := term.GetSize(fd); err == nil && width > cols {
			width = cols
		}
	}

	var open, reset string
	if isTerminal {
		if code, ok := bgColors[t.styles["background-color"]]; ok {
			open = "\x1b[" + code + "m"
			reset = "\x1b[0m"
		}
	}

	inner := width - 2
	fmt.Fprintf(t.out, "%s+%s+%s\n", open, strings.Repeat("-", inner), reset)
	fmt.Fprintf(t.out, "%s|%s|%s\n", open, pad(t.text, inner), reset)
	fmt.Fprintf(t.out, "%s+%s+%s\n", open, strings.Repeat("-", inner), reset)

	if transition, ok := t.styles["transition"]; ok {
		fmt.Fprintf(t.out, "~ %s\n", transition)
	}
}

func pad(str string, width int) string {
	if len(str) > width {
		return str[:width]
	}
	left := (width - len(str)) / 2
	right := width - len(str) - left
	return strings.Repeat(" ", left) + str + strings.Repeat(" ", right)
}

// pxToColumns maps a css-ish pixel length to terminal columns,
// eight pixels per column.
func pxToColumns(value string) int {
	value = strings.TrimSuffix(value, "px")
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n / 8
}
