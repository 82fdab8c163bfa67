package faults

import "context"

// Event is one reported script failure. What names the command or
// engine phase that produced it; Line is the 1-based script line
// number when known, 0 otherwise.
type Event struct {
	What string
	Line int
	Err  error
}

// Sink receives failure events. Reporting never aborts the caller;
// the producing operation continues with best-effort state.
type Sink func(ctx context.Context, event Event)
