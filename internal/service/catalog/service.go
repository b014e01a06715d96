package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/dto"
)

type GadgetStore interface {
	Create(ctx context.Context, gadget *domain.Gadget) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Gadget, error)
	List(ctx context.Context) ([]domain.Gadget, error)
}

type RateStore interface {
	Current(ctx context.Context) (*domain.ExchangeRate, error)
	Upsert(ctx context.Context, rate *domain.ExchangeRate, at time.Time) error
}

type Service struct {
	gadgets GadgetStore
	rates   RateStore
	now     func() time.Time
}

func New(gadgets GadgetStore, rates RateStore) *Service {
	return &Service{gadgets: gadgets, rates: rates, now: time.Now}
}

func (s *Service) CreateGadget(ctx context.Context, req dto.GadgetRequest) (*domain.Gadget, error) {
	var errs []domain.FieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Reason: "is required"})
	}
	if req.Price <= 0 {
		errs = append(errs, domain.FieldError{Field: "price", Reason: "must be a positive integer"})
	}
	if strings.TrimSpace(req.Condition) == "" {
		errs = append(errs, domain.FieldError{Field: "condition", Reason: "is required"})
	}
	if len(req.ImageURLs) == 0 {
		errs = append(errs, domain.FieldError{Field: "imageUrls", Reason: "at least one image is required"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	gadget := &domain.Gadget{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Condition:   strings.TrimSpace(req.Condition),
		Description: req.Description,
		Specs:       req.Specs,
		ImageURLs:   req.ImageURLs,
		Available:   true,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.gadgets.Create(ctx, gadget); err != nil {
		return nil, err
	}
	return gadget, nil
}

func (s *Service) ListGadgets(ctx context.Context) ([]domain.Gadget, error) {
	return s.gadgets.List(ctx)
}

func (s *Service) GetGadget(ctx context.Context, id uuid.UUID) (*domain.Gadget, error) {
	return s.gadgets.GetByID(ctx, id)
}

// CurrentRate returns nil without error when no rate has been published yet;
// the boundary renders that as JSON null.
func (s *Service) CurrentRate(ctx context.Context) (*domain.ExchangeRate, error) {
	rate, err := s.rates.Current(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return rate, err
}

func (s *Service) UpsertRate(ctx context.Context, req dto.ExchangeRateRequest) (*domain.ExchangeRate, error) {
	var errs []domain.FieldError
	if req.USDToNaira <= 0 {
		errs = append(errs, domain.FieldError{Field: "usdToNaira", Reason: "must be a positive integer"})
	}
	if req.GiftCardRate <= 0 {
		errs = append(errs, domain.FieldError{Field: "giftCardRate", Reason: "must be a positive integer"})
	}
	if req.BTCToNaira <= 0 {
		errs = append(errs, domain.FieldError{Field: "btcToNaira", Reason: "must be a positive integer"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	rate := &domain.ExchangeRate{
		USDToNaira:   req.USDToNaira,
		GiftCardRate: req.GiftCardRate,
		BTCToNaira:   req.BTCToNaira,
	}
	if err := s.rates.Upsert(ctx, rate, s.now().UTC()); err != nil {
		return nil, err
	}
	return rate, nil
}
