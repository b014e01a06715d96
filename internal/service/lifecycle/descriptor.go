package lifecycle

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/dto"
)

// Descriptor captures everything that differs between the three intake kinds:
// the required-field set, the legal status set, the noun used in rejection
// notices, and how to build the persisted record from the wire payload. The
// engine itself is kind-agnostic.
type Descriptor struct {
	Kind     domain.Kind
	Noun     string
	Statuses []domain.Status
	Validate func(req dto.SubmissionRequest) []domain.FieldError
	Build    func(req dto.SubmissionRequest, id uuid.UUID, at time.Time) domain.Submission
}

func (d Descriptor) allows(status domain.Status) bool {
	for _, s := range d.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

func descriptors() map[domain.Kind]Descriptor {
	return map[domain.Kind]Descriptor{
		domain.KindGiftCard:         giftCardDescriptor(),
		domain.KindCryptoTrade:      cryptoTradeDescriptor(),
		domain.KindGadgetSubmission: gadgetSubmissionDescriptor(),
	}
}

func giftCardDescriptor() Descriptor {
	return Descriptor{
		Kind: domain.KindGiftCard,
		Noun: "gift card submission",
		Statuses: []domain.Status{
			domain.StatusPending, domain.StatusVerified, domain.StatusPaid,
			domain.StatusCompleted, domain.StatusRejected,
		},
		Validate: func(req dto.SubmissionRequest) []domain.FieldError {
			var errs []domain.FieldError
			errs = requireText(errs, "cardType", req.CardType)
			errs = requireText(errs, "region", req.Region)
			if req.Amount <= 0 {
				errs = append(errs, domain.FieldError{Field: "amount", Reason: "must be a positive integer"})
			}
			errs = requireText(errs, "bankName", req.BankName)
			errs = requireText(errs, "accountNumber", req.AccountNumber)
			errs = requireText(errs, "accountName", req.AccountName)
			return errs
		},
		Build: func(req dto.SubmissionRequest, id uuid.UUID, at time.Time) domain.Submission {
			return &domain.GiftCardSubmission{
				ID:            id,
				CardType:      strings.TrimSpace(req.CardType),
				Region:        strings.TrimSpace(req.Region),
				Amount:        req.Amount,
				CardCode:      req.CardCode,
				ImageURLs:     req.ImageURLs,
				BankName:      strings.TrimSpace(req.BankName),
				AccountNumber: strings.TrimSpace(req.AccountNumber),
				AccountName:   strings.TrimSpace(req.AccountName),
				CustomerEmail: strings.TrimSpace(req.CustomerEmail),
				Status:        domain.StatusPending,
				CreatedAt:     at,
			}
		},
	}
}

func cryptoTradeDescriptor() Descriptor {
	return Descriptor{
		Kind: domain.KindCryptoTrade,
		Noun: "crypto trade",
		Statuses: []domain.Status{
			domain.StatusPending, domain.StatusCompleted, domain.StatusRejected,
		},
		Validate: func(req dto.SubmissionRequest) []domain.FieldError {
			var errs []domain.FieldError
			switch req.TradeType {
			case "buy", "sell":
			default:
				errs = append(errs, domain.FieldError{Field: "tradeType", Reason: "must be buy or sell"})
			}
			errs = requireText(errs, "coin", req.Coin)
			// Crypto amounts stay free-form text: "0.5 BTC" is a valid amount.
			errs = requireText(errs, "cryptoAmount", req.CryptoAmount)
			return errs
		},
		Build: func(req dto.SubmissionRequest, id uuid.UUID, at time.Time) domain.Submission {
			return &domain.CryptoTrade{
				ID:              id,
				TradeType:       req.TradeType,
				Coin:            strings.TrimSpace(req.Coin),
				Amount:          strings.TrimSpace(req.CryptoAmount),
				TransactionHash: strings.TrimSpace(req.TransactionHash),
				BankName:        strings.TrimSpace(req.BankName),
				AccountNumber:   strings.TrimSpace(req.AccountNumber),
				AccountName:     strings.TrimSpace(req.AccountName),
				CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
				Status:          domain.StatusPending,
				CreatedAt:       at,
			}
		},
	}
}

func gadgetSubmissionDescriptor() Descriptor {
	return Descriptor{
		Kind: domain.KindGadgetSubmission,
		Noun: "gadget trade-in",
		Statuses: []domain.Status{
			domain.StatusPending, domain.StatusCompleted, domain.StatusRejected,
		},
		Validate: func(req dto.SubmissionRequest) []domain.FieldError {
			var errs []domain.FieldError
			errs = requireText(errs, "submissionType", req.SubmissionType)
			errs = requireText(errs, "deviceType", req.DeviceType)
			errs = requireText(errs, "brand", req.Brand)
			errs = requireText(errs, "model", req.Model)
			errs = requireText(errs, "condition", req.Condition)
			return errs
		},
		Build: func(req dto.SubmissionRequest, id uuid.UUID, at time.Time) domain.Submission {
			return &domain.GadgetSubmission{
				ID:             id,
				SubmissionType: strings.TrimSpace(req.SubmissionType),
				DeviceType:     strings.TrimSpace(req.DeviceType),
				Brand:          strings.TrimSpace(req.Brand),
				Model:          strings.TrimSpace(req.Model),
				Condition:      strings.TrimSpace(req.Condition),
				Description:    req.Description,
				ImageURLs:      req.ImageURLs,
				BankName:       strings.TrimSpace(req.BankName),
				AccountNumber:  strings.TrimSpace(req.AccountNumber),
				AccountName:    strings.TrimSpace(req.AccountName),
				CustomerEmail:  strings.TrimSpace(req.CustomerEmail),
				Status:         domain.StatusPending,
				CreatedAt:      at,
			}
		},
	}
}

func requireText(errs []domain.FieldError, field, value string) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, domain.FieldError{Field: field, Reason: "is required"})
	}
	return errs
}
