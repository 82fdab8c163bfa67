package props

// Value is a property tree value: a literal string or a nested tree.
// There are no other kinds.
type Value interface {
	isValue()
}

type Str string

func (Str) isValue() {}

func (*Tree) isValue() {}
