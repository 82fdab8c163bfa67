package props

import "iter"

// Tree maps keys to values, keeping key insertion order. Keys are
// case-sensitive; the empty key is never stored.
type Tree struct {
	keys   []string
	values map[string]Value
}

func NewTree() *Tree {
	return &Tree{
		values: make(map[string]Value),
	}
}

func (t *Tree) Len() int {
	return len(t.keys)
}

func (t *Tree) Get(key string) (Value, bool) {
	value, ok := t.values[key]
	return value, ok
}

// Str returns the string leaf at key, if key holds one.
func (t *Tree) Str(key string) (string, bool) {
	value, ok := t.values[key]
	if !ok {
		return "", false
	}
	str, ok := value.(Str)
	if !ok {
		return "", false
	}
	return string(str), true
}

// Sub returns the nested tree at key, if key holds one.
func (t *Tree) Sub(key string) (*Tree, bool) {
	value, ok := t.values[key]
	if !ok {
		return nil, false
	}
	sub, ok := value.(*Tree)
	if !ok {
		return nil, false
	}
	return sub, true
}

func (t *Tree) Set(key string, value Value) {
	if key == "" {
		return
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// All iterates entries in insertion order.
func (t *Tree) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range t.keys {
			if !yield(key, t.values[key]) {
				return
			}
		}
	}
}
