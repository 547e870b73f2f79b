package db

import (
	"context"
	"sync"
)

// Memory хранит значения в памяти процесса
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory создает пустое хранилище в памяти
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
