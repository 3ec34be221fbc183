package database

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Alexmuzz/zezamii-test/internal/models"
)

// MemoryUserStore keeps users in insertion order in process memory.
// Lookups are linear scans.
type MemoryUserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  []models.User
	log    *zap.Logger
}

func NewMemoryUserStore(logger *zap.Logger) *MemoryUserStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryUserStore{nextID: 1, users: []models.User{}, log: logger}
}

func (s *MemoryUserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	u := s.users[i]
	return &u, nil
}

func (s *MemoryUserStore) Create(_ context.Context, f models.UserFields) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{ID: s.nextID, Name: f.Name, Email: f.Email}
	s.nextID++
	s.users = append(s.users, u)

	s.log.Debug("user created", zap.Int64("id", u.ID))
	return &u, nil
}

func (s *MemoryUserStore) Update(_ context.Context, id int64, f models.UserFields) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	s.users[i].Name = f.Name
	s.users[i].Email = f.Email

	s.log.Debug("user updated", zap.Int64("id", id))
	u := s.users[i]
	return &u, nil
}

func (s *MemoryUserStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)

	s.log.Debug("user deleted", zap.Int64("id", id))
	return nil
}

// indexOf must be called with mu held.
func (s *MemoryUserStore) indexOf(id int64) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
