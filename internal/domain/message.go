package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message rows are append-only; there is no edit or delete path.
type Message struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"senderId"`
	SenderUsername string     `gorm:"not null" json:"senderUsername"`
	MessageText    string     `gorm:"not null" json:"messageText"`
	RecipientID    *uuid.UUID `gorm:"type:uuid;index" json:"recipientId,omitempty"`
	IsAdminMessage bool       `gorm:"not null;default:false" json:"isAdminMessage"`
	CreatedAt      time.Time  `gorm:"not null" json:"createdAt"`
}

func (Message) TableName() string { return "messages" }
