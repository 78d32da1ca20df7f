package plaid

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalance is the aggregate current balance of one business at the
// opening date, summed across all of its item's accounts.
type OpeningBalance struct {
	BusinessID string
	Date       time.Time
	Amount     decimal.Decimal
}

// PullOpeningBalances creates one sandbox item per business, fetches its
// account balances and aggregates them to a single opening balance per
// business_id.
func PullOpeningBalances(ctx context.Context, c *Client, businessIDs []string, institutionID string, openingDate time.Time) ([]OpeningBalance, error) {
	balances := make([]OpeningBalance, 0, len(businessIDs))
	for _, biz := range businessIDs {
		publicToken, err := c.SandboxPublicToken(ctx, institutionID)
		if err != nil {
			return nil, fmt.Errorf("create sandbox item for %s: %w", biz, err)
		}
		accessToken, err := c.ExchangePublicToken(ctx, publicToken)
		if err != nil {
			return nil, fmt.Errorf("exchange token for %s: %w", biz, err)
		}
		accounts, err := c.GetAccounts(ctx, accessToken)
		if err != nil {
			return nil, fmt.Errorf("fetch balances for %s: %w", biz, err)
		}

		total := decimal.Zero
		for _, a := range accounts {
			if a.Balances.Current != nil {
				total = total.Add(*a.Balances.Current)
			}
		}
		balances = append(balances, OpeningBalance{
			BusinessID: biz,
			Date:       openingDate,
			Amount:     total,
		})
	}
	return balances, nil
}
