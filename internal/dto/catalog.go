package dto

type GadgetRequest struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Condition   string   `json:"condition"`
	Description string   `json:"description"`
	Specs       []string `json:"specs"`
	ImageURLs   []string `json:"imageUrls"`
}

type ExchangeRateRequest struct {
	USDToNaira   int `json:"usdToNaira"`
	GiftCardRate int `json:"giftCardRate"`
	BTCToNaira   int `json:"btcToNaira"`
}

type AdminStats struct {
	PendingGiftCards int `json:"pendingGiftCards"`
	CryptoTrades     int `json:"cryptoTrades"`
	GadgetRequests   int `json:"gadgetRequests"`
	CompletedToday   int `json:"completedToday"`
}
