package plaid

import "github.com/shopspring/decimal"

type sandboxPublicTokenCreateRequest struct {
	ClientID        string   `json:"client_id"`
	Secret          string   `json:"secret"`
	InstitutionID   string   `json:"institution_id"`
	InitialProducts []string `json:"initial_products"`
}

type sandboxPublicTokenCreateResponse struct {
	PublicToken string `json:"public_token"`
	RequestID   string `json:"request_id"`
}

type itemPublicTokenExchangeRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	PublicToken string `json:"public_token"`
}

type itemPublicTokenExchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

type accountsGetRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

type accountsGetResponse struct {
	Accounts  []Account `json:"accounts"`
	RequestID string    `json:"request_id"`
}

// Account is a bank account as returned by /accounts/get. Balance fields are
// nullable on the wire.
type Account struct {
	AccountID    string          `json:"account_id"`
	Name         string          `json:"name"`
	OfficialName *string         `json:"official_name"`
	Mask         *string         `json:"mask"`
	Type         string          `json:"type"`
	Subtype      *string         `json:"subtype"`
	Balances     AccountBalances `json:"balances"`
}

type AccountBalances struct {
	Available *decimal.Decimal `json:"available"`
	Current   *decimal.Decimal `json:"current"`
	Limit     *decimal.Decimal `json:"limit"`
}

type apiError struct {
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	RequestID    string `json:"request_id"`
}
