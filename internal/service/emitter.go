package service

import "context"

// ─────────────────────────────────────────────────────────────
// EventEmitter — decouples services from wailsRuntime
// ─────────────────────────────────────────────────────────────

// EventEmitter pushes events to the frontend. The App struct
// implements it by delegating to wailsRuntime.EventsEmit; services
// depend on this interface so they stay testable with a mock.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// MockEmitter records every emission for test assertions.
type MockEmitter struct {
	Events []EmittedEvent
}

// EmittedEvent is a single recorded emission.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}

// ByName returns the recorded emissions for one event name.
func (m *MockEmitter) ByName(event string) []EmittedEvent {
	var out []EmittedEvent
	for _, e := range m.Events {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}
