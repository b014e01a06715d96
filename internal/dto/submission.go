package dto

// SubmissionRequest is the union of the three intake payloads. Each kind's
// descriptor picks out and validates the fields it cares about; the handler
// decodes every intake POST into this one shape.
type SubmissionRequest struct {
	// Gift card
	CardType string `json:"cardType"`
	Region   string `json:"region"`
	Amount   int    `json:"amount"`
	CardCode string `json:"cardCode"`

	// Crypto trade
	TradeType       string `json:"tradeType"`
	Coin            string `json:"coin"`
	CryptoAmount    string `json:"cryptoAmount"`
	TransactionHash string `json:"transactionHash"`

	// Gadget trade-in
	SubmissionType string `json:"submissionType"`
	DeviceType     string `json:"deviceType"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Condition      string `json:"condition"`
	Description    string `json:"description"`

	// Shared
	ImageURLs     []string `json:"imageUrls"`
	BankName      string   `json:"bankName"`
	AccountNumber string   `json:"accountNumber"`
	AccountName   string   `json:"accountName"`
	CustomerEmail string   `json:"customerEmail"`
}

type StatusUpdateRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason"`
}
