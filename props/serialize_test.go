package props

import "testing"

func TestSerialize(t *testing.T) {
	tree := NewTree()
	tree.Set("text", Str("Hi"))
	sub := NewTree()
	sub.Set("type", Str("fade"))
	tree.Set("animation", sub)
	tree.Set("color", Str("red"))

	expect := "text = \"Hi\"\n" +
		"animation.type = \"fade\"\n" +
		"color = \"red\"\n"
	if got := Serialize(tree); got != expect {
		t.Fatalf("got %q", got)
	}
}

func TestSerializeEmpty(t *testing.T) {
	if got := Serialize(NewTree()); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestSerializeDeepPath(t *testing.T) {
	tree := Parse("a.b.c = 1\n")
	if got := Serialize(tree); got != "a.b.c = \"1\"\n" {
		t.Fatalf("got %q", got)
	}
}
