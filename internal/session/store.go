package session

import (
	"webshop-client/internal/logger"
	"webshop-client/internal/storage"

	"go.uber.org/zap"
)

// Store persists the session snapshot. It never talks to the network;
// the request gateway is the sole arbiter of present validity.
type Store struct {
	storage *storage.Store
}

func NewStore(st *storage.Store) *Store {
	return &Store{storage: st}
}

// Get returns the persisted session, or nil when absent or unreadable.
func (s *Store) Get() *Session {
	var sess Session
	found, err := s.storage.Get(storage.KeySession, &sess)
	if err != nil {
		logger.L().Warn("failed to read session record", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	return &sess
}

func (s *Store) Set(sess Session) error {
	return s.storage.Set(storage.KeySession, sess)
}

// Clear removes the session AND the cart record. Logging out must not
// leave a cart attributable to the previous identity.
func (s *Store) Clear() {
	if err := s.storage.Remove(storage.KeySession); err != nil {
		logger.L().Warn("failed to remove session record", zap.Error(err))
	}
	if err := s.storage.Remove(storage.KeyCart); err != nil {
		logger.L().Warn("failed to remove cart record", zap.Error(err))
	}
}

func (s *Store) IsAuthenticated() bool {
	return s.Get() != nil
}

func (s *Store) HasRole(role RoleName) bool {
	sess := s.Get()
	return sess != nil && sess.Role.Name == role
}

func (s *Store) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}
