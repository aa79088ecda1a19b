package user

import (
	"context"
	"strings"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	mu    sync.RWMutex
	users map[string]User
	ids   []string
}

func NewRepository() Repository {
	return &repository{users: make(map[string]User)}
}

func clone(u User) *User {
	if u.Phone != nil {
		phone := *u.Phone
		u.Phone = &phone
	}
	return &u
}

func (r *repository) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[u.ID] = *clone(*u)
	r.ids = append(r.ids, u.ID)
	return nil
}

func (r *repository) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return clone(u), nil
}

// FindByEmail matches case-insensitively.
func (r *repository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ids {
		if u := r.users[id]; strings.EqualFold(u.Email, email) {
			return clone(u), nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *repository) List(_ context.Context) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*User, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, clone(r.users[id]))
	}
	return out, nil
}

func (r *repository) Update(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return ErrUserNotFound
	}
	r.users[u.ID] = *clone(*u)
	return nil
}

func (r *repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}
