package messaging

import (
	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/domain"
)

// Conversation is a derived grouping, not a stored entity.
type Conversation struct {
	SenderID       uuid.UUID        `json:"senderId"`
	SenderUsername string           `json:"senderUsername"`
	Messages       []domain.Message `json:"messages"`
}

// Conversations groups messages by sender id, preserving the order of the
// input slice both across groups and within each group. It never re-sorts:
// when fed ListAll output (newest-first) the first message of each group is
// that sender's most recent one.
func Conversations(msgs []domain.Message) []Conversation {
	index := make(map[uuid.UUID]int)
	var out []Conversation
	for _, msg := range msgs {
		i, ok := index[msg.SenderID]
		if !ok {
			i = len(out)
			index[msg.SenderID] = i
			out = append(out, Conversation{
				SenderID:       msg.SenderID,
				SenderUsername: msg.SenderUsername,
			})
		}
		out[i].Messages = append(out[i].Messages, msg)
	}
	return out
}
