package export

import (
	"bytes"
	"encoding/csv"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"bitbucket.org/mmdatafocus/forecast_backend/plaid"
)

var openingBalanceHeader = []string{
	"business_id",
	"opening_balance_date",
	"opening_balance_amount",
}

// OpeningBalancesCSVBytes renders one opening balance row per business.
func OpeningBalancesCSVBytes(balances []plaid.OpeningBalance) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(openingBalanceHeader); err != nil {
		return nil, err
	}
	for _, b := range balances {
		row := []string{
			b.BusinessID,
			b.Date.Format(models.DateLayout),
			b.Amount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
