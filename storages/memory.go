package storages

import "context"

// Memory keeps values in process memory. Not safe for concurrent
// use; callers serialize access like any other store.
type Memory struct {
	values map[string]string
}

var _ Store = new(Memory)

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
	}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Memory) Set(ctx context.Context, key string, value string) error {
	m.values[key] = value
	return nil
}
