package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pixology/backend/internal/user/entity"
)

// MemoryStorage is a thread-safe in-process account store. It enforces the
// same uniqueness guarantees as the sqlite store (checked under one lock, so
// insert-if-absent is atomic) and backs unit tests and db-less runs.
type MemoryStorage struct {
	mx         sync.RWMutex
	byID       map[string]entity.Account
	byUsername map[string]string
	byEmail    map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:       make(map[string]entity.Account),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

func (m *MemoryStorage) ExistsByUsername(_ context.Context, username string) (bool, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()

	_, exists := m.byUsername[username]
	return exists, nil
}

func (m *MemoryStorage) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()

	_, exists := m.byEmail[email]
	return exists, nil
}

func (m *MemoryStorage) FindByEmail(_ context.Context, email string) (entity.Account, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()

	id, exists := m.byEmail[email]
	if !exists {
		return entity.Account{}, ErrRecordNotFound
	}
	return m.byID[id], nil
}

func (m *MemoryStorage) Save(_ context.Context, a entity.Account) (entity.Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	m.mx.Lock()
	defer m.mx.Unlock()

	if _, exists := m.byUsername[a.Username]; exists {
		return entity.Account{}, ErrUsernameExists
	}
	if _, exists := m.byEmail[a.Email]; exists {
		return entity.Account{}, ErrEmailExists
	}

	m.byID[a.ID] = a
	m.byUsername[a.Username] = a.ID
	m.byEmail[a.Email] = a.ID

	return a, nil
}
