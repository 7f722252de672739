package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Halzat4/Online-shop/internal/cache"
	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/Halzat4/Online-shop/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const loadKey = "clients"

// ClientService reads client records through the cache and writes them to the store.
type ClientService struct {
	repo   repository.ClientStore
	cache  cache.ClientCache
	logger *zap.Logger
	sfg    singleflight.Group // Prevents cache stampede
}

func NewClientService(repo repository.ClientStore, c cache.ClientCache, logger *zap.Logger) *ClientService {
	if c == nil {
		c = cache.NoopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// Load returns a private copy of the record set.
func (s *ClientService) Load(ctx context.Context) (repository.Clients, error) {
	v, err, _ := s.sfg.Do(loadKey, func() (interface{}, error) {
		clients, err := s.cache.Get(ctx)
		if err == nil {
			return clients, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("cache get error", zap.Error(err)) // log cache error but continue
		}

		clients, err = s.repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load clients: %w", err)
		}

		if errSet := s.cache.Set(ctx, clients); errSet != nil {
			s.logger.Warn("cache set error", zap.Error(errSet))
		}
		return clients, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(repository.Clients).Clone(), nil
}

func (s *ClientService) Save(ctx context.Context, clients repository.Clients) error {
	if err := s.repo.Save(ctx, clients); err != nil {
		s.logger.Error("repo save error", zap.Error(err))
		return fmt.Errorf("failed to save clients: %w", err)
	}

	s.invalidateCache()
	return nil
}

func (s *ClientService) Lookup(ctx context.Context, name string) (repository.ClientRecord, error) {
	clients, err := s.Load(ctx)
	if err != nil {
		return repository.ClientRecord{}, err
	}
	return clients.Get(name)
}

// Register stores a new client with an empty cart.
func (s *ClientService) Register(ctx context.Context, name, contact string) (repository.ClientRecord, error) {
	if err := domain.ValidateContact(contact); err != nil {
		return repository.ClientRecord{}, err
	}
	clients, err := s.Load(ctx)
	if err != nil {
		return repository.ClientRecord{}, err
	}
	if rec, ok := clients[name]; ok {
		return rec, nil
	}

	rec := repository.ClientRecord{
		ID:      repository.NewClientID(clients),
		Contact: contact,
		Cart:    []domain.LineRecord{},
	}
	clients[name] = rec
	if err := s.Save(ctx, clients); err != nil {
		return repository.ClientRecord{}, err
	}

	s.logger.Info("client registered", zap.String("client_id", rec.ID))
	return rec, nil
}

// UpdateContact replaces a known client's contact and drops the saved cart.
func (s *ClientService) UpdateContact(ctx context.Context, name, contact string) error {
	if err := domain.ValidateContact(contact); err != nil {
		return err
	}
	return s.update(ctx, name, func(rec *repository.ClientRecord) {
		rec.Contact = contact
		rec.Cart = []domain.LineRecord{}
	})
}

func (s *ClientService) SaveCart(ctx context.Context, name string, lines []domain.LineRecord) error {
	if lines == nil {
		lines = []domain.LineRecord{}
	}
	return s.update(ctx, name, func(rec *repository.ClientRecord) {
		rec.Cart = lines
	})
}

func (s *ClientService) ClearCart(ctx context.Context, name string) error {
	return s.SaveCart(ctx, name, nil)
}

func (s *ClientService) update(ctx context.Context, name string, fn func(rec *repository.ClientRecord)) error {
	clients, err := s.Load(ctx)
	if err != nil {
		return err
	}
	rec, err := clients.Get(name)
	if err != nil {
		return err
	}
	fn(&rec)
	clients[name] = rec
	return s.Save(ctx, clients)
}

func (s *ClientService) invalidateCache() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx); err != nil {
		s.logger.Warn("cache invalidate error", zap.Error(err))
	}
}
