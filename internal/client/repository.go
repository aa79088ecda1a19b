package client

import (
	"context"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id string) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	mu      sync.RWMutex
	clients map[string]Client
	ids     []string
}

func NewRepository() Repository {
	return &repository{clients: make(map[string]Client)}
}

func clone(c Client) *Client {
	if c.Address != nil {
		addr := *c.Address
		c.Address = &addr
	}
	return &c
}

func (r *repository) Create(_ context.Context, c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients[c.ID] = *clone(*c)
	r.ids = append(r.ids, c.ID)
	return nil
}

func (r *repository) GetByID(_ context.Context, id string) (*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	return clone(c), nil
}

func (r *repository) List(_ context.Context) ([]*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Client, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, clone(r.clients[id]))
	}
	return out, nil
}

func (r *repository) Update(_ context.Context, c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[c.ID]; !ok {
		return ErrClientNotFound
	}
	r.clients[c.ID] = *clone(*c)
	return nil
}

func (r *repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[id]; !ok {
		return ErrClientNotFound
	}
	delete(r.clients, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}
