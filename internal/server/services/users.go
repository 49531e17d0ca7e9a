package services

import (
	"context"
	"fmt"
	"sync"

	"courseledger/internal/apperr"
	"courseledger/internal/server/models"
	"courseledger/internal/store"
)

type UserService struct {
	store *store.Store
	mu    *sync.Mutex
}

func (s *UserService) Get(ctx context.Context, id uint64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok, err := s.store.Users.Get(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("reading user: %w", err)
	}
	if !ok {
		return models.User{}, apperr.NotFound("user", id)
	}
	return user, nil
}

// Register creates a user unconditionally. Usernames and public keys are not
// unique; duplicates are allowed.
func (s *UserService) Register(ctx context.Context, username, publicKey string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.store.IDs.NextID(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("allocating user id: %w", err)
	}

	user := models.User{
		ID:        id,
		Username:  username,
		PublicKey: publicKey,
	}
	if err := s.store.Users.Put(ctx, id, user); err != nil {
		return models.User{}, fmt.Errorf("writing user: %w", err)
	}
	return user, nil
}

// Delete removes the user record. Certificates referencing the user are left
// in place; dangling foreign keys are tolerated.
func (s *UserService) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.store.Users.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("reading user: %w", err)
	}
	if !ok {
		return apperr.NotFound("user", id)
	}

	if _, _, err := s.store.Users.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}
