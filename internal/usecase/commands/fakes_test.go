//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memCartStore persists carts by value so callers never share line slices.
type memCartStore struct {
	mu      sync.Mutex
	carts   map[uuid.UUID][]cart.Line
	deleted int
	loadErr error
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[uuid.UUID][]cart.Line)}
}

func (s *memCartStore) Load(_ context.Context, shopperID uuid.UUID) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return cart.Reconstruct(s.carts[shopperID]), nil
}

func (s *memCartStore) Save(_ context.Context, shopperID uuid.UUID, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[shopperID] = c.Lines()
	return nil
}

func (s *memCartStore) Delete(_ context.Context, shopperID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, shopperID)
	s.deleted++
	return nil
}

func (s *memCartStore) put(shopperID uuid.UUID, c *cart.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[shopperID] = c.Lines()
}

type memSessionStore struct {
	mu  sync.Mutex
	ids map[uuid.UUID]uuid.UUID
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{ids: make(map[uuid.UUID]uuid.UUID)}
}

func (s *memSessionStore) ClaimSessionID(_ context.Context, shopperID, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[shopperID]; ok {
		return false, nil
	}
	s.ids[shopperID] = id
	return true, nil
}

func (s *memSessionStore) SessionID(_ context.Context, shopperID uuid.UUID) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.ids[shopperID]
	return id, ok, nil
}

func (s *memSessionStore) ClearSessionID(_ context.Context, shopperID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, shopperID)
	return nil
}

func (s *memSessionStore) get(shopperID uuid.UUID) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.ids[shopperID]
	return id, ok
}

type recordedEvent struct {
	name      string
	sessionID uuid.UUID
	started   shared.CheckoutStartedEvent
	completed shared.PurchaseCompletedEvent
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (p *recordingPublisher) CheckoutStarted(_ context.Context, evt shared.CheckoutStartedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{name: "checkout_started", sessionID: evt.SessionID, started: evt})
	return p.err
}

func (p *recordingPublisher) PurchaseCompleted(_ context.Context, evt shared.PurchaseCompletedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{name: "purchase_completed", sessionID: evt.SessionID, completed: evt})
	return p.err
}

func (p *recordingPublisher) snapshot() []recordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]recordedEvent, len(p.events))
	copy(out, p.events)
	return out
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}
