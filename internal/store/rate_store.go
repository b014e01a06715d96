package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stammy-cpu/Jtech/internal/domain"
)

type RateStore struct{ db *gorm.DB }

func (s *Store) Rates() *RateStore { return &RateStore{db: s.DB} }

// Current returns the latest exchange-rate row, or domain.ErrNotFound when no
// rate has ever been published.
func (r *RateStore) Current(ctx context.Context) (*domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	if err := r.db.WithContext(ctx).Order("updated_at DESC").First(&rate).Error; err != nil {
		return nil, translate(err)
	}
	return &rate, nil
}

// Upsert replaces the current row if one exists, otherwise inserts the first.
// The table only ever holds one logical "current" record.
func (r *RateStore) Upsert(ctx context.Context, rate *domain.ExchangeRate, at time.Time) error {
	existing, err := r.Current(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	rate.UpdatedAt = at
	if existing != nil {
		rate.ID = existing.ID
		return r.db.WithContext(ctx).
			Model(&domain.ExchangeRate{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"usd_to_naira":   rate.USDToNaira,
				"gift_card_rate": rate.GiftCardRate,
				"btc_to_naira":   rate.BTCToNaira,
				"updated_at":     at,
			}).Error
	}
	if rate.ID == uuid.Nil {
		rate.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(rate).Error
}
