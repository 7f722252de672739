package cache

import (
	"context"
	"errors"

	"github.com/Halzat4/Online-shop/internal/repository"
)

// ClientCache holds a copy of the client record set.
type ClientCache interface {
	Get(ctx context.Context) (repository.Clients, error)
	Set(ctx context.Context, clients repository.Clients) error
	Delete(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")

// NoopCache always misses. It is used when no Redis address is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context) (repository.Clients, error) { return nil, ErrCacheMiss }
func (NoopCache) Set(context.Context, repository.Clients) error   { return nil }
func (NoopCache) Delete(context.Context) error                    { return nil }
