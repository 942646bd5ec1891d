package storage

import (
	"context"
)

// Fixed keys every user session reads and writes.
const (
	KeyLoggedMeals   = "logged_meals"
	KeySavedMealPlan = "saved_indian_meal_plan"
	KeyLoginAt       = "loginAt"
)

// Backend is a key/value store partitioned by owner user id.
// Values are opaque bytes; a missing key is reported with found=false, not an error.
type Backend interface {
	Get(ctx context.Context, ownerUserID, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, ownerUserID, key string, value []byte) error
	Delete(ctx context.Context, ownerUserID, key string) error
	Close() error
}

// Store is a Backend bound to a single owner.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type ownerStore struct {
	backend     Backend
	ownerUserID string
}

// ForOwner scopes backend to ownerUserID.
func ForOwner(backend Backend, ownerUserID string) Store {
	return &ownerStore{backend: backend, ownerUserID: ownerUserID}
}

func (s *ownerStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.backend.Get(ctx, s.ownerUserID, key)
}

func (s *ownerStore) Set(ctx context.Context, key string, value []byte) error {
	return s.backend.Set(ctx, s.ownerUserID, key, value)
}

func (s *ownerStore) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, s.ownerUserID, key)
}
