package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	domainErrors "github.com/gearmart/orderdesk/internal/domain/errors"
	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/domain/repository"
	"github.com/gearmart/orderdesk/internal/normalize"
)

// Store owns the authoritative in-memory order collection for the active
// session. It loads raw records from an opaque JSON blob, runs each through
// the normalizer, and persists the whole collection back on every mutation
// (last writer wins, single-writer assumption).
type Store struct {
	blob       repository.BlobStore
	normalizer *normalize.Normalizer
	logger     *slog.Logger

	mu     sync.Mutex
	orders []model.Order
}

// New constructs the order store.
func New(blob repository.BlobStore, normalizer *normalize.Normalizer, logger *slog.Logger) *Store {
	return &Store{blob: blob, normalizer: normalizer, logger: logger}
}

// Load reads the persisted blob, normalizes every record, and replaces the
// in-memory collection. A corrupt blob yields an empty collection rather than
// an error; individual malformed records are dropped and logged.
func (s *Store) Load(ctx context.Context) ([]model.Order, error) {
	data, ok, err := s.blob.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read orders blob: %w", domainErrors.ErrPersistence, err)
	}

	var orders []model.Order
	if ok && len(data) > 0 {
		orders = s.decode(data)
	}

	s.mu.Lock()
	s.orders = orders
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return snapshot, nil
}

func (s *Store) decode(data []byte) []model.Order {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("orders blob corrupt, starting with empty collection",
			slog.String("error", err.Error()))
		return nil
	}

	orders := make([]model.Order, 0, len(raw))
	for i, record := range raw {
		var order model.Order
		if err := json.Unmarshal(record, &order); err != nil {
			s.logger.Warn("dropping malformed order record",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			continue
		}
		orders = append(orders, s.normalizer.Normalize(order))
	}
	return orders
}

// Orders returns a copy of the in-memory collection.
func (s *Store) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// FindByID performs a linear lookup in the in-memory collection.
func (s *Store) FindByID(id string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return model.Order{}, domainErrors.ErrNotFound
}

// Append normalizes a raw record produced by the checkout collaborator,
// appends it to the collection, and persists.
func (s *Store) Append(ctx context.Context, order model.Order) (model.Order, error) {
	normalized := s.normalizer.Normalize(order)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, normalized)
	if err := s.saveLocked(ctx); err != nil {
		return normalized, err
	}
	return normalized, nil
}

// Update applies mutate to the order with the given id and persists the
// collection. When the write fails the in-memory mutation is retained so a
// bare Save retry can complete the workflow.
func (s *Store) Update(ctx context.Context, id string, mutate func(model.Order) model.Order) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, order := range s.orders {
		if order.ID != id {
			continue
		}
		s.orders[i] = mutate(order)
		updated := s.orders[i]
		if err := s.saveLocked(ctx); err != nil {
			return updated, err
		}
		return updated, nil
	}
	return model.Order{}, domainErrors.ErrNotFound
}

// Refresh applies a recompute function to every order and persists only when
// something actually changed. Used to keep time-derived eligibility flags from
// going stale between loads.
func (s *Store) Refresh(ctx context.Context, apply func(model.Order) model.Order) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i, order := range s.orders {
		updated := apply(order)
		if !reflect.DeepEqual(updated, order) {
			s.orders[i] = updated
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, s.saveLocked(ctx)
}

// Save persists the current in-memory collection as-is.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Store) saveLocked(ctx context.Context) error {
	data, err := json.Marshal(s.orders)
	if err != nil {
		return fmt.Errorf("%w: encode orders: %w", domainErrors.ErrPersistence, err)
	}
	if err := s.blob.Put(ctx, data); err != nil {
		return fmt.Errorf("%w: write orders blob: %w", domainErrors.ErrPersistence, err)
	}
	return nil
}

func (s *Store) snapshotLocked() []model.Order {
	snapshot := make([]model.Order, len(s.orders))
	copy(snapshot, s.orders)
	return snapshot
}
