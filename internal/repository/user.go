package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/storage"
)

type UserRepository struct {
	mu    sync.Mutex
	users collection[userRecord]
}

func NewUserRepo(store storage.Store, namespace string) *UserRepository {
	return &UserRepository{
		users: collection[userRecord]{store: store, key: Key(namespace, usersKey)},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.users.load(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	for _, rec := range records {
		if rec.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}

	records = append(records, toUserRecord(user))
	if err = r.users.save(ctx, records); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(ctx, func(rec userRecord) bool { return rec.ID == id })
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(ctx, func(rec userRecord) bool { return rec.Email == email })
}

func (r *UserRepository) find(ctx context.Context, match func(userRecord) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.users.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	for _, rec := range records {
		if match(rec) {
			return rec.toDomain()
		}
	}

	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.users.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	res := make([]*domain.User, 0, len(records))
	for _, rec := range records {
		u, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		res = append(res, u)
	}

	return res, nil
}

// Modify loads the user, applies fn and persists the result as one step.
// Nothing is written when fn returns an error.
func (r *UserRepository) Modify(ctx context.Context, id string, fn func(u *domain.User) error) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.users.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("modify user: %w", err)
	}

	idx := -1
	for i, rec := range records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrUserNotFound
	}

	u, err := records[idx].toDomain()
	if err != nil {
		return nil, fmt.Errorf("modify user: %w", err)
	}
	if err = fn(u); err != nil {
		return nil, err
	}
	// id and email are identity; fn must not move the record
	u.ID = records[idx].ID
	u.Email = records[idx].Email

	records[idx] = toUserRecord(u)
	if err = r.users.save(ctx, records); err != nil {
		return nil, fmt.Errorf("modify user: %w", err)
	}

	return u.Clone(), nil
}
