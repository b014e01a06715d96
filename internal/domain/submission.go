package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/dbjson"
)

type Kind string

const (
	KindGiftCard         Kind = "gift-card"
	KindCryptoTrade      Kind = "crypto-trade"
	KindGadgetSubmission Kind = "gadget-submission"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusVerified  Status = "verified"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Submission is the kind-independent view the lifecycle engine works with.
// Each of the three intake tables implements it.
type Submission interface {
	SubmissionID() uuid.UUID
	SubmissionKind() Kind
	SubmissionStatus() Status
	SubmittedAt() time.Time
	Customer() string
	// Summary renders the kind-specific human-readable description used in
	// rejection notices, e.g. "Amazon US - ₦100".
	Summary() string
}

type GiftCardSubmission struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	CardType        string            `gorm:"not null" json:"cardType"`
	Region          string            `gorm:"not null" json:"region"`
	Amount          int               `gorm:"not null" json:"amount"`
	CardCode        string            `json:"cardCode,omitempty"`
	ImageURLs       dbjson.StringList `gorm:"type:text" json:"imageUrls"`
	BankName        string            `gorm:"not null" json:"bankName"`
	AccountNumber   string            `gorm:"not null" json:"accountNumber"`
	AccountName     string            `gorm:"not null" json:"accountName"`
	CustomerEmail   string            `json:"customerEmail,omitempty"`
	Status          Status            `gorm:"not null;default:pending" json:"status"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time         `gorm:"not null" json:"createdAt"`
}

func (GiftCardSubmission) TableName() string { return "gift_card_submissions" }

func (s *GiftCardSubmission) SubmissionID() uuid.UUID { return s.ID }
func (s *GiftCardSubmission) SubmissionKind() Kind { return KindGiftCard }
func (s *GiftCardSubmission) SubmissionStatus() Status { return s.Status }
func (s *GiftCardSubmission) SubmittedAt() time.Time { return s.CreatedAt }
func (s *GiftCardSubmission) Customer() string { return s.CustomerEmail }
func (s *GiftCardSubmission) Summary() string {
	return fmt.Sprintf("%s %s - ₦%d", s.CardType, s.Region, s.Amount)
}

type CryptoTrade struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TradeType       string    `gorm:"not null" json:"tradeType"`
	Coin            string    `gorm:"not null" json:"coin"`
	// Free-form on purpose: crypto amounts are fractional ("0.5 BTC").
	Amount          string    `gorm:"not null" json:"amount"`
	TransactionHash string    `json:"transactionHash,omitempty"`
	BankName        string    `json:"bankName,omitempty"`
	AccountNumber   string    `json:"accountNumber,omitempty"`
	AccountName     string    `json:"accountName,omitempty"`
	CustomerEmail   string    `json:"customerEmail,omitempty"`
	Status          Status    `gorm:"not null;default:pending" json:"status"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"createdAt"`
}

func (CryptoTrade) TableName() string { return "crypto_trades" }

func (s *CryptoTrade) SubmissionID() uuid.UUID { return s.ID }
func (s *CryptoTrade) SubmissionKind() Kind { return KindCryptoTrade }
func (s *CryptoTrade) SubmissionStatus() Status { return s.Status }
func (s *CryptoTrade) SubmittedAt() time.Time { return s.CreatedAt }
func (s *CryptoTrade) Customer() string { return s.CustomerEmail }
func (s *CryptoTrade) Summary() string {
	return fmt.Sprintf("%s %s - %s", s.TradeType, s.Coin, s.Amount)
}

type GadgetSubmission struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionType  string            `gorm:"not null" json:"submissionType"`
	DeviceType      string            `gorm:"not null" json:"deviceType"`
	Brand           string            `gorm:"not null" json:"brand"`
	Model           string            `gorm:"not null" json:"model"`
	Condition       string            `gorm:"not null" json:"condition"`
	Description     string            `json:"description,omitempty"`
	ImageURLs       dbjson.StringList `gorm:"type:text" json:"imageUrls"`
	BankName        string            `json:"bankName,omitempty"`
	AccountNumber   string            `json:"accountNumber,omitempty"`
	AccountName     string            `json:"accountName,omitempty"`
	CustomerEmail   string            `json:"customerEmail,omitempty"`
	Status          Status            `gorm:"not null;default:pending" json:"status"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time         `gorm:"not null" json:"createdAt"`
}

func (GadgetSubmission) TableName() string { return "gadget_submissions" }

func (s *GadgetSubmission) SubmissionID() uuid.UUID { return s.ID }
func (s *GadgetSubmission) SubmissionKind() Kind { return KindGadgetSubmission }
func (s *GadgetSubmission) SubmissionStatus() Status { return s.Status }
func (s *GadgetSubmission) SubmittedAt() time.Time { return s.CreatedAt }
func (s *GadgetSubmission) Customer() string { return s.CustomerEmail }
func (s *GadgetSubmission) Summary() string {
	return fmt.Sprintf("%s %s", s.Brand, s.Model)
}
