package state

import (
	"context"
	"sync"
)

type Memory struct {
	mu     sync.Mutex
	states map[int64]State
}

func NewMemory() *Memory {
	return &Memory{states: make(map[int64]State)}
}

func (m *Memory) Get(_ context.Context, userID int64) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.states[userID]; ok {
		return s, nil
	}
	return Idle, nil
}

func (m *Memory) Set(_ context.Context, userID int64, s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s == Idle {
		delete(m.states, userID)
		return nil
	}
	m.states[userID] = s
	return nil
}

func (m *Memory) Clear(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, userID)
	return nil
}
