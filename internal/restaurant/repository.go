package restaurant

import (
	"context"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	List(ctx context.Context) ([]*Restaurant, error)
	Update(ctx context.Context, r *Restaurant) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	mu          sync.RWMutex
	restaurants map[string]Restaurant
	ids         []string
}

func NewRepository() Repository {
	return &repository{restaurants: make(map[string]Restaurant)}
}

func clone(r Restaurant) *Restaurant {
	if r.Phone != nil {
		phone := *r.Phone
		r.Phone = &phone
	}
	return &r
}

func (repo *repository) Create(_ context.Context, r *Restaurant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.restaurants[r.ID] = *clone(*r)
	repo.ids = append(repo.ids, r.ID)
	return nil
}

func (repo *repository) GetByID(_ context.Context, id string) (*Restaurant, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	r, ok := repo.restaurants[id]
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	return clone(r), nil
}

func (repo *repository) List(_ context.Context) ([]*Restaurant, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*Restaurant, 0, len(repo.ids))
	for _, id := range repo.ids {
		out = append(out, clone(repo.restaurants[id]))
	}
	return out, nil
}

func (repo *repository) Update(_ context.Context, r *Restaurant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.restaurants[r.ID]; !ok {
		return ErrRestaurantNotFound
	}
	repo.restaurants[r.ID] = *clone(*r)
	return nil
}

func (repo *repository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.restaurants[id]; !ok {
		return ErrRestaurantNotFound
	}
	delete(repo.restaurants, id)
	for i, existing := range repo.ids {
		if existing == id {
			repo.ids = append(repo.ids[:i], repo.ids[i+1:]...)
			break
		}
	}
	return nil
}
