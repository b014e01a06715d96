package dto

type PostMessageRequest struct {
	MessageText string `json:"messageText"`
}

type ReplyRequest struct {
	MessageText string `json:"messageText"`
	RecipientID string `json:"recipientId"`
}
