package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/dbjson"
)

// Gadget is an admin-curated marketplace listing, distinct from a gadget
// trade-in submission.
type Gadget struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string            `gorm:"not null" json:"name"`
	Price       int               `gorm:"not null" json:"price"`
	Condition   string            `gorm:"not null" json:"condition"`
	Description string            `json:"description,omitempty"`
	Specs       dbjson.StringList `gorm:"type:text" json:"specs"`
	ImageURLs   dbjson.StringList `gorm:"type:text;not null" json:"imageUrls"`
	Available   bool              `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time         `gorm:"not null" json:"createdAt"`
}

func (Gadget) TableName() string { return "gadgets" }

// ExchangeRate is a logical singleton: clients only ever read the latest row.
type ExchangeRate struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	USDToNaira   int       `gorm:"not null" json:"usdToNaira"`
	GiftCardRate int       `gorm:"not null" json:"giftCardRate"`
	BTCToNaira   int       `gorm:"not null" json:"btcToNaira"`
	UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`
}

func (ExchangeRate) TableName() string { return "exchange_rates" }
