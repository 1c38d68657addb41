package logger

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

type PurchaseCompletedEvent struct {
	ID        uint `gorm:"primaryKey"`
	BuyerID   string
	StoreID   string
	ProductID string
	Recipient string
	Amount    uint64
	Timestamp time.Time
}

// PurchaseFailedEvent is written when a transfer went through but the
// purchase could not be persisted afterwards.
type PurchaseFailedEvent struct {
	ID        uint `gorm:"primaryKey"`
	BuyerID   string
	StoreID   string
	ProductID string
	Recipient string
	Amount    uint64
	Reason    string
	Timestamp time.Time
}

type PurchaseEventLogger interface {
	LogPurchaseCompleted(ctx context.Context, event PurchaseCompletedEvent) error
	LogPurchaseFailed(ctx context.Context, event PurchaseFailedEvent) error
}

type PGPurchaseEventLogger struct {
	db *gorm.DB
}

func NewPGPurchaseEventLogger(db *gorm.DB) *PGPurchaseEventLogger {
	return &PGPurchaseEventLogger{db: db}
}

func (l *PGPurchaseEventLogger) LogPurchaseCompleted(ctx context.Context, event PurchaseCompletedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGPurchaseEventLogger) LogPurchaseFailed(ctx context.Context, event PurchaseFailedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

// SlogPurchaseEventLogger writes purchase events to the structured log only.
type SlogPurchaseEventLogger struct {
	log *slog.Logger
}

func NewSlogPurchaseEventLogger(log *slog.Logger) *SlogPurchaseEventLogger {
	return &SlogPurchaseEventLogger{log: log}
}

func (l *SlogPurchaseEventLogger) LogPurchaseCompleted(ctx context.Context, event PurchaseCompletedEvent) error {
	l.log.InfoContext(ctx, "purchase completed",
		"buyer", event.BuyerID,
		"store", event.StoreID,
		"product", event.ProductID,
		"recipient", event.Recipient,
		"amount", event.Amount,
	)
	return nil
}

func (l *SlogPurchaseEventLogger) LogPurchaseFailed(ctx context.Context, event PurchaseFailedEvent) error {
	l.log.ErrorContext(ctx, "purchase failed after transfer",
		"buyer", event.BuyerID,
		"store", event.StoreID,
		"product", event.ProductID,
		"recipient", event.Recipient,
		"amount", event.Amount,
		"reason", event.Reason,
	)
	return nil
}
