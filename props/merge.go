package props

type Policy uint8

const (
	// PolicyReplace: incoming wholly supersedes base.
	PolicyReplace Policy = iota
	// PolicyMerge: top-level keys from incoming override base; keys
	// nested as trees in both are shallow-merged one level down.
	// Anything deeper is replaced wholesale.
	PolicyMerge
)

// Merge combines base and incoming under policy and returns the
// result. Under PolicyMerge the base tree is mutated in place.
func Merge(base, incoming *Tree, policy Policy) *Tree {
	if policy == PolicyReplace {
		return incoming
	}

	for key, value := range incoming.All() {
		incomingSub, ok := value.(*Tree)
		if !ok {
			base.Set(key, value)
			continue
		}
		baseSub, ok := base.Sub(key)
		if !ok {
			base.Set(key, value)
			continue
		}
		for subKey, subValue := range incomingSub.All() {
			baseSub.Set(subKey, subValue)
		}
	}

	return base
}
