package dto

// MintTokenInput contains the input for minting reward tokens.
type MintTokenInput struct {
	// Source signs the call and must be the token admin.
	Source string `json:"source,omitempty"`
	To     string `json:"to"`
	// Amount is a display amount.
	Amount string `json:"amount"`
}

// TransferTokenInput contains the input for a token transfer.
type TransferTokenInput struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}
