package targets

import "context"

// Memory records everything applied to it.
type Memory struct {
	Created bool
	ID      string
	Text    string
	Styles  map[string]string
}

var _ Target = new(Memory)

func NewMemory() *Memory {
	return &Memory{
		Styles: make(map[string]string),
	}
}

func (m *Memory) Create(ctx context.Context) error {
	m.Created = true
	if m.Styles == nil {
		m.Styles = make(map[string]string)
	}
	return nil
}

func (m *Memory) SetID(id string) {
	m.ID = id
}

func (m *Memory) SetText(text string) {
	m.Text = text
}

func (m *Memory) SetStyle(name string, value string) {
	m.Styles[name] = value
}
