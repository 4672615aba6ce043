// Package credentials persists the user collection and the current session
// record on top of a key-value repository.
//
// Both records are JSON text under fixed keys (see common.UsersKey and
// common.CurrentUserKey). A missing or unparsable value is treated as empty
// and logged, never surfaced; the store does no locking, so concurrent
// writers from other processes overwrite each other.
package credentials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/repositories/kv"
)

type Store struct {
	repo kv.Repository
	log  logging.Logger
}

func NewStore(repo kv.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// ReadUsers returns the persisted collection. A missing or corrupt blob
// yields an empty slice; only backend I/O failures are returned as errors.
func (s *Store) ReadUsers(ctx context.Context) ([]models.User, error) {
	raw, err := s.repo.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	if raw == nil {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		s.log.Warn(ctx, "stored users are unreadable, treating as empty", "key", common.UsersKey, "error", err)
		return []models.User{}, nil
	}
	if users == nil {
		return []models.User{}, nil
	}
	return users, nil
}

// LoadUsers is ReadUsers that never fails: backend errors are logged and
// reported as an empty collection.
func (s *Store) LoadUsers(ctx context.Context) []models.User {
	users, err := s.ReadUsers(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load users, treating as empty", "error", err)
		return []models.User{}
	}
	return users
}

// SaveUsers overwrites the persisted collection with users.
func (s *Store) SaveUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	b, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.repo.Set(ctx, common.UsersKey, b); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// LoadSession returns the signed-in user, or nil when there is none or the
// record cannot be read.
func (s *Store) LoadSession(ctx context.Context) *models.User {
	raw, err := s.repo.Get(ctx, common.CurrentUserKey)
	if err != nil {
		s.log.Error(ctx, "failed to load session, treating as signed out", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var u *models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn(ctx, "stored session is unreadable, treating as signed out", "key", common.CurrentUserKey, "error", err)
		return nil
	}
	return u
}

func (s *Store) SaveSession(ctx context.Context, u models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, common.CurrentUserKey, b); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.CurrentUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// FindByEmail returns a copy of the first user whose email equals email exactly.
func FindByEmail(users []models.User, email string) (*models.User, bool) {
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, true
		}
	}
	return nil, false
}

// FindByCredentials returns a copy of the first user matching both email and
// password exactly. Passwords are compared in plaintext.
func FindByCredentials(users []models.User, email, password string) (*models.User, bool) {
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			u := users[i]
			return &u, true
		}
	}
	return nil, false
}
