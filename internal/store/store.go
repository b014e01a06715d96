package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/stammy-cpu/Jtech/internal/domain"
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{DB: db} }

func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.DB.WithContext(ctx).AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Message{},
		&domain.GiftCardSubmission{},
		&domain.CryptoTrade{},
		&domain.GadgetSubmission{},
		&domain.Gadget{},
		&domain.ExchangeRate{},
	)
}
