package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stammy-cpu/Jtech/internal/domain"
)

type GadgetStore struct{ db *gorm.DB }

func (s *Store) Gadgets() *GadgetStore { return &GadgetStore{db: s.DB} }

func (g *GadgetStore) Create(ctx context.Context, gadget *domain.Gadget) error {
	if gadget.ID == uuid.Nil {
		gadget.ID = uuid.New()
	}
	return g.db.WithContext(ctx).Create(gadget).Error
}

func (g *GadgetStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Gadget, error) {
	var gadget domain.Gadget
	if err := g.db.WithContext(ctx).First(&gadget, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &gadget, nil
}

func (g *GadgetStore) List(ctx context.Context) ([]domain.Gadget, error) {
	var gadgets []domain.Gadget
	if err := g.db.WithContext(ctx).Order("created_at DESC").Find(&gadgets).Error; err != nil {
		return nil, err
	}
	return gadgets, nil
}
