package cmdscripts

// Env is the shared mutable environment command handlers read and
// write. The host owns it and may swap in a fresh one between runs;
// handlers only mutate the instance passed to them.
type Env map[string]any
