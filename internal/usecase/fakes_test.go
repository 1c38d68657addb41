package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/memory"
	storedto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/store"
)

var errStorageDown = errors.New("storage down")

type transfer struct {
	Recipient string
	Amount    uint64
}

type recordingWallet struct {
	mu        sync.Mutex
	transfers []transfer
	err       error
}

func (w *recordingWallet) Transfer(_ context.Context, recipientID string, amount uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.transfers = append(w.transfers, transfer{Recipient: recipientID, Amount: amount})
	return nil
}

func (w *recordingWallet) Transfers() []transfer {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]transfer{}, w.transfers...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.MarketplaceEvent
	err    error
}

func (p *recordingPublisher) PublishEvent(event domain.MarketplaceEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]domain.EventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

type recordingEventLogger struct {
	completed []logger.PurchaseCompletedEvent
	failed    []logger.PurchaseFailedEvent
}

func (l *recordingEventLogger) LogPurchaseCompleted(_ context.Context, event logger.PurchaseCompletedEvent) error {
	l.completed = append(l.completed, event)
	return nil
}

func (l *recordingEventLogger) LogPurchaseFailed(_ context.Context, event logger.PurchaseFailedEvent) error {
	l.failed = append(l.failed, event)
	return nil
}

// failingPurchaseRepo reads from an in-memory repository but cannot write.
type failingPurchaseRepo struct {
	*memory.PurchaseRepository
}

func (failingPurchaseRepo) SaveReferences(context.Context, string, []domain.PurchasedReference) error {
	return errStorageDown
}

type fixedClock uint64

func (c fixedClock) Now() uint64 { return uint64(c) }

// manualClock returns whatever it was last set to, including earlier values.
type manualClock struct {
	mu  sync.Mutex
	now uint64
}

func (c *manualClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Set(now uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// blockingWallet holds every transfer until release is closed.
type blockingWallet struct {
	entered chan struct{}
	release chan struct{}
}

func newBlockingWallet() *blockingWallet {
	return &blockingWallet{entered: make(chan struct{}, 1), release: make(chan struct{})}
}

func (w *blockingWallet) Transfer(ctx context.Context, _ string, _ uint64) error {
	select {
	case w.entered <- struct{}{}:
	default:
	}
	select {
	case <-w.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func call(caller string) domain.CallContext {
	return domain.CallContext{Caller: caller}
}

func payingCall(caller string, deposit uint64) domain.CallContext {
	return domain.CallContext{Caller: caller, Deposit: deposit}
}

func storeInput(name string) *storedto.StoreInput {
	return &storedto.StoreInput{
		Name:        name,
		Description: "Fresh goods every day",
		Banner:      "https://img.example/banner.png",
		Location:    "Porto",
	}
}
