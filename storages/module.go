package storages

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

func (Module) Store() Store {
	return NewMemory()
}
